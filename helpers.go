package sitepreview

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// TitleFromFilename derives a human-readable title from a page's
// filename: dashes and underscores become spaces, then title case.
func TitleFromFilename(name string) string {
	return titleCaser.String(strings.ReplaceAll(strings.ReplaceAll(name, "-", " "), "_", " "))
}
