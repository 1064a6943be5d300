// Package grapheme provides the grapheme-cluster primitives shared by the
// buffer and editor packages. Caret offsets and segment boundaries are
// counted in clusters, on-screen positions in terminal cells.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of a cluster.
//
// Zero-width results from runewidth fall back to uniseg, which knows about
// emoji presentation sequences.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w == 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// IndexAtCell maps a cell column to a caret index in clusters.
//
// A click on the right half of a wide cluster lands after it. Columns past
// the end map to len(clusters).
func IndexAtCell(clusters []string, cell int) int {
	if cell <= 0 {
		return 0
	}
	x := 0
	for i, c := range clusters {
		w := Width(c)
		if cell < x+w {
			if cell-x >= (w+1)/2 && w > 1 {
				return i + 1
			}
			return i
		}
		x += w
	}
	return len(clusters)
}

// CellAtIndex returns the cell column where the cluster at index starts.
func CellAtIndex(clusters []string, index int) int {
	if index > len(clusters) {
		index = len(clusters)
	}
	x := 0
	for i := 0; i < index; i++ {
		x += Width(clusters[i])
	}
	return x
}
