package snippet

import (
	"regexp"
	"strings"
)

// classNameWords matches one uppercase letter followed by its lowercase
// run. An all-uppercase identifier has no such run and yields nothing.
var classNameWords = regexp.MustCompile(`[A-Z][a-z]+`)

// titleFromClassName spaces out a PascalCase class name:
// "SaveCancelButtonComponent" becomes "Save Cancel Button Component".
func titleFromClassName(name string) string {
	return strings.Join(classNameWords.FindAllString(name, -1), " ")
}

// titleFromSelector title-cases a kebab-case selector:
// "save-cancel-button" becomes "Save Cancel Button".
func titleFromSelector(selector string) string {
	parts := strings.Split(selector, "-")
	for i, p := range parts {
		parts[i] = upperFirst(p)
	}
	return strings.Join(parts, " ")
}

// stripAttributeBrackets removes one leading "[" and one trailing "]"
// from an attribute-style selector.
func stripAttributeBrackets(selector string) string {
	return strings.TrimSuffix(strings.TrimPrefix(selector, "["), "]")
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
