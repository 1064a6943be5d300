// Package duration implements the structured duration value edited by the
// durafield editor.
//
// A Value holds whole days, hours, minutes and seconds. Values produced while
// a user is typing may be unnormalized (minutes >= 60 and so on); Normalize
// carries the excess into the enabled units. Values travel outside the editor
// as ISO-8601 duration strings, with the empty string standing for an absent
// duration.
package duration
