// Package buffer implements the single-line text model behind the duration
// field: text, caret and the primitive edits a plain input applies on its own
// (typing, delete, backspace, caret moves).
//
// Offsets are 0-based and counted in grapheme clusters. The caret sits
// between clusters, so valid positions are 0..Len().
package buffer

import (
	"github.com/iw2rmb/durafield/internal/grapheme"
)

// Buffer holds text and caret. The zero value is an empty buffer.
type Buffer struct {
	clusters []string

	caret int

	version     uint64
	textVersion uint64
}

func New(text string) *Buffer {
	return &Buffer{clusters: grapheme.Split(text)}
}

func (b *Buffer) Text() string { return grapheme.Join(b.clusters) }

// Len returns the text length in clusters.
func (b *Buffer) Len() int { return len(b.clusters) }

func (b *Buffer) Caret() int { return b.caret }

// Version increases on every effective text or caret change.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increases on every effective text change.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// Clusters returns a copy of the text split into grapheme clusters.
func (b *Buffer) Clusters() []string {
	return append([]string(nil), b.clusters...)
}

// SetCaret moves the caret, clamped into 0..Len().
func (b *Buffer) SetCaret(pos int) {
	next := clampInt(pos, 0, len(b.clusters))
	if next == b.caret {
		return
	}
	b.caret = next
	b.version++
}

// SetText replaces the whole text. The caret keeps its offset, clamped to the
// new length.
func (b *Buffer) SetText(text string) {
	next := grapheme.Split(text)
	if equalClusters(next, b.clusters) {
		return
	}
	b.clusters = next
	b.caret = clampInt(b.caret, 0, len(b.clusters))
	b.version++
	b.textVersion++
}

// Slice returns the text between start and end, both clamped.
func (b *Buffer) Slice(start, end int) string {
	start = clampInt(start, 0, len(b.clusters))
	end = clampInt(end, start, len(b.clusters))
	return grapheme.Join(b.clusters[start:end])
}

// Replace substitutes [start, end) with text and reports whether the
// document changed. The caret is left untouched unless it fell past the new
// end of the text.
func (b *Buffer) Replace(start, end int, text string) bool {
	start = clampInt(start, 0, len(b.clusters))
	end = clampInt(end, start, len(b.clusters))
	ins := grapheme.Split(text)
	if equalClusters(ins, b.clusters[start:end]) {
		return false
	}

	out := make([]string, 0, len(b.clusters)-(end-start)+len(ins))
	out = append(out, b.clusters[:start]...)
	out = append(out, ins...)
	out = append(out, b.clusters[end:]...)
	b.clusters = out
	b.caret = clampInt(b.caret, 0, len(b.clusters))
	b.version++
	b.textVersion++
	return true
}

// InsertText inserts text at the caret and moves the caret past it.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	at := b.caret
	b.Replace(at, at, s)
	b.caret = at + grapheme.Count(s)
}

// DeleteBackward removes the cluster before the caret.
func (b *Buffer) DeleteBackward() {
	if b.caret == 0 {
		return
	}
	at := b.caret - 1
	b.Replace(at, at+1, "")
	b.caret = at
}

// DeleteForward removes the cluster after the caret.
func (b *Buffer) DeleteForward() {
	if b.caret >= len(b.clusters) {
		return
	}
	b.Replace(b.caret, b.caret+1, "")
}

// Dir is a caret movement direction.
type Dir uint8

const (
	DirLeft Dir = iota
	DirRight
	DirHome
	DirEnd
)

// Move moves the caret one cluster, or to either end of the text.
func (b *Buffer) Move(d Dir) {
	switch d {
	case DirLeft:
		b.SetCaret(b.caret - 1)
	case DirRight:
		b.SetCaret(b.caret + 1)
	case DirHome:
		b.SetCaret(0)
	case DirEnd:
		b.SetCaret(len(b.clusters))
	}
}

func equalClusters(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
