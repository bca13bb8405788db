// Package search implements the case-insensitive substring search shared
// by the driver, car and manufacturer lists, plus page arithmetic.
package search

import "strings"

// Normalize trims surrounding whitespace from a raw query parameter.
func Normalize(query string) string {
	return strings.TrimSpace(query)
}

// Contains reports whether value contains query, ignoring case.
// An empty query matches everything.
func Contains(value, query string) bool {
	query = Normalize(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

// Filter returns the items whose field contains query, ignoring case, in
// their original order. An empty query returns items unchanged.
func Filter[T any](items []T, field func(T) string, query string) []T {
	query = Normalize(query)
	if query == "" {
		return items
	}

	needle := strings.ToLower(query)
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(field(item)), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ILikePattern builds the argument of a `column ILIKE ?` predicate that
// matches the same rows as Contains. Wildcards in query match literally.
func ILikePattern(query string) string {
	return "%" + likeEscaper.Replace(Normalize(query)) + "%"
}
