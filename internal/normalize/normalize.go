// Package normalize folds user-entered strings into a canonical form.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.English)

// Category returns the display form of a category ("desserts" → "Desserts").
func Category(s string) string {
	return titler.String(strings.TrimSpace(s))
}
