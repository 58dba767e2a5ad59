package formclient

import "unicode/utf16"

// messageLength counts the message in UTF-16 code units, matching what a
// browser's String.length reports for the same text. Astral characters
// (emoji and the like) therefore count as two, deliberately: the
// server-rendered counter and a browser-rendered one must agree.
func messageLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}
