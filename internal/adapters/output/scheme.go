// internal/adapters/output/scheme.go
package output

import "regexp"

// schemePattern equivale a sed -E 's|https?://||g'.
var schemePattern = regexp.MustCompile(`https?://`)

// StripScheme quita todas las apariciones de http:// y https:// de line.
func StripScheme(line string) string {
	return schemePattern.ReplaceAllString(line, "")
}

// StripSchemes aplica StripScheme a cada línea.
func StripSchemes(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = StripScheme(l)
	}
	return out
}

// MergeURLList lee una lista de URLs de httpx, quita el esquema y la
// fusiona en target con semántica anew.
func MergeURLList(urlList, target string) ([]string, error) {
	lines, err := ReadLines(urlList)
	if err != nil {
		return nil, err
	}
	return Merge(target, StripSchemes(lines))
}
