package export

import "regexp"

// langFenceRegex matches a fence opener whose info string uses Ghost's
// "lang-" prefix.
var langFenceRegex = regexp.MustCompile("```lang-(\\w+)")

// RewriteCodeFences replaces every ```lang-X with ```X.
func RewriteCodeFences(body string) string {
	return langFenceRegex.ReplaceAllString(body, "```${1}")
}
