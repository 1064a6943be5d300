// Package editor provides a Bubble Tea inline duration editor.
//
// The field shows a compact read-only rendering ("1d 4h") in view mode and a
// fully segmented rendering ("1d 4h 0m 0s") in edit mode, where keystrokes
// adjust one segment at a time while the caret stays on segment boundaries.
// Leaving edit mode parses the segments, normalizes the result and commits it
// as an ISO-8601 duration, reporting effective changes through
// Config.OnChange.
package editor
