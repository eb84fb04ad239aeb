package sitepreview

import "strings"

const frontMatterDelim = "---"

// SplitFrontMatter extracts a leading ----delimited front-matter block
// from content. Each block line containing a colon contributes one
// key/value pair, split on the first colon with both sides trimmed;
// lines without a colon are ignored. The returned body is the remainder
// of the file, trimmed.
//
// Content that does not start with the delimiter, or whose block is
// never closed, is returned untouched with a nil map.
func SplitFrontMatter(content string) (map[string]string, string) {
	if !strings.HasPrefix(content, frontMatterDelim) {
		return nil, content
	}
	parts := strings.SplitN(content, frontMatterDelim, 3)
	if len(parts) < 3 {
		return nil, content
	}
	fm := make(map[string]string)
	for _, line := range strings.Split(strings.TrimSpace(parts[1]), "\n") {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		fm[key] = value
	}
	return fm, strings.TrimSpace(parts[2])
}
