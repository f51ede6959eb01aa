package post

import (
	"regexp"
	"strings"
)

var hashtagRe = regexp.MustCompile(`#(\w+)`)

// ExtractHashtags scans text for #word tokens and returns the lower-cased
// tags without the leading '#', deduplicated, in order of first appearance.
func ExtractHashtags(text string) []string {
	matches := hashtagRe.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
