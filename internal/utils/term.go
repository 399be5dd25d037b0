package utils

import (
	"regexp"
	"strings"
)

// ANSI_ESCAPE_SEQUENCE_REGEX matches CSI and OSC sequences, including color codes and cursor movements.
var ANSI_ESCAPE_SEQUENCE_REGEX = regexp.MustCompile("[\u001B\u009B][[\\]()#;?]*(?:(?:(?:[a-zA-Z\\d]*(?:;[a-zA-Z\\d]*)*)?\u0007)|(?:(?:\\d{1,4}(?:;\\d{0,4})*)?[\\dA-PRZcf-ntqry=><~]))")

// StripANSISequences removes escape sequences from str, it is used to print plain text
// when colors are disabled.
func StripANSISequences(str string) string {
	if !strings.ContainsAny(str, "\u001B\u009B") {
		return str
	}
	return ANSI_ESCAPE_SEQUENCE_REGEX.ReplaceAllString(str, "")
}
