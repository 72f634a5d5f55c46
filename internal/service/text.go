package service

import (
	"regexp"
	"strings"
)

var (
	escapedControls = strings.NewReplacer(`\n`, " ", `\r`, " ", `\t`, " ")
	controlChars    = regexp.MustCompile(`[\r\n\t]+`)
	repeatedSpace   = regexp.MustCompile(`[\s\v\p{Z}\x{feff}]{2,}`)
)

// SafeText renders a template field value as a single trimmed line.
// A numeric zero renders as "0"; nil, false and "" render as "".
func SafeText(v interface{}) string {
	if !truthy(v) && !isNumber(v) {
		return ""
	}

	s := toText(v)
	s = escapedControls.Replace(s)
	s = controlChars.ReplaceAllString(s, " ")
	s = repeatedSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
