package format

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var indentOptions = &pretty.Options{Width: -1, Indent: "  "}

// indentJSON re-serializes raw JSON with two-space indentation, keeping key order.
func indentJSON(raw string) string {
	out := pretty.PrettyOptions([]byte(raw), indentOptions)
	return strings.TrimRight(string(out), "\n")
}

// codeBlock renders text that parses as JSON as an indented fenced block
// and returns anything else unchanged.
func codeBlock(text string) string {
	if strings.TrimSpace(text) == "" || !gjson.Valid(text) {
		return text
	}
	return "```" + indentJSON(text) + "```"
}
