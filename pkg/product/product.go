// pkg/product/product.go

// Package product reads the host machine's vendor and model identity.
package product

import "strings"

// placeholders are the strings firmware vendors ship instead of real
// values. They are treated the same as a missing field.
var placeholders = []string{
	"to be filled by o.e.m.",
	"default string",
	"system manufacturer",
	"system product name",
	"system version",
	"none",
}

// cleanValue trims a DMI value and discards firmware placeholders.
func cleanValue(value string) string {
	value = strings.TrimSpace(value)
	lower := strings.ToLower(value)
	for _, p := range placeholders {
		if lower == p {
			return ""
		}
	}
	return value
}

// composeProduct builds a single display string out of the machine's
// identity fields, skipping duplicates. "LENOVO ThinkPad X1 Carbon
// ThinkPad X1 Carbon Gen 9" collapses to the obvious name.
func composeProduct(vendor, family, name, version string) string {
	var parts []string
	for _, field := range []string{vendor, family, name, version} {
		field = cleanValue(field)
		if field == "" {
			continue
		}
		if len(parts) > 0 && strings.Contains(strings.Join(parts, " "), field) {
			continue
		}
		parts = append(parts, field)
	}
	return strings.Join(parts, " ")
}
