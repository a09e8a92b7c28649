// Package names converts physical table and column names into the display
// names shown to users: "product_id" becomes "Product ID", the table
// "order" becomes "Orders".
package names

import (
	"strings"
	"unicode"

	pluralize "github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

var pluralizer = pluralize.NewClient()

// Humanize converts a physical column or table name into a display name.
// Snake case and camel case inputs both split into space separated words,
// each word is capitalized, and common initialisms are upper cased:
// "product_id" becomes "Product ID", "createdAt" becomes "Created At".
func Humanize(name string) string {
	if name == "" {
		return ""
	}
	words := strings.Fields(strcase.ToDelimited(name, ' '))
	for i, word := range words {
		if u := strings.ToUpper(word); commonInitialisms[u] {
			words[i] = u
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// TableDisplayName builds a display name for a table. Physical table names
// may be singular, display names are always plural: "order" and "ORDERS"
// both become "Orders".
func TableDisplayName(name string) string {
	display := Humanize(name)
	if display == "" {
		return ""
	}
	words := strings.Split(display, " ")
	words[len(words)-1] = pluralizer.Plural(words[len(words)-1])
	return strings.Join(words, " ")
}

// StripID removes the trailing " ID" from a humanized foreign key column
// name, so "Product ID" labels a joined table as "Product".
func StripID(displayName string) string {
	stripped := strings.TrimSuffix(displayName, " ID")
	if stripped == "" {
		return displayName
	}
	return stripped
}

// CountLabel renders a count with its pluralized noun:
// CountLabel(1, "column") is "1 column", CountLabel(3, "column") is
// "3 columns".
func CountLabel(count int, word string) string {
	return pluralizer.Pluralize(word, count, true)
}

// commonInitialisms is a set of common initialisms.
// Only add entries that are highly unlikely to be non-initialisms in a
// column name. For instance, "ID" is fine, but "AND" is not.
var commonInitialisms = map[string]bool{
	"API":   true,
	"ASCII": true,
	"CPU":   true,
	"CSS":   true,
	"DNS":   true,
	"GUID":  true,
	"HTML":  true,
	"HTTP":  true,
	"HTTPS": true,
	"ID":    true,
	"IP":    true,
	"JSON":  true,
	"RAM":   true,
	"SKU":   true,
	"SLA":   true,
	"SMTP":  true,
	"SQL":   true,
	"SSH":   true,
	"TCP":   true,
	"TLS":   true,
	"TTL":   true,
	"UDP":   true,
	"UI":    true,
	"UID":   true,
	"URI":   true,
	"URL":   true,
	"UTC":   true,
	"UTF8":  true,
	"UUID":  true,
	"VM":    true,
	"XML":   true,
}
