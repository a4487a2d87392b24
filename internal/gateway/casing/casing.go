// Package casing converts identifiers and map keys between the REST
// tier's snake_case and the GraphQL surface's camelCase.
//
// ToCamel and ToSnake are not perfect inverses for every input:
// leading capitals and digit-led components round-trip lossily
// (e.g. "HTTPServer" -> "h_t_t_p_server" -> "hTTPServer"). Schema field
// names avoid those shapes, so the limitation is documented rather than
// patched.
package casing

import (
	"strings"
	"unicode"
)

// ToCamel converts a snake_case identifier to camelCase by splitting on
// underscores and capitalizing every component after the first.
//
//	ToCamel("phone_numbers") == "phoneNumbers"
//	ToCamel("type_number") == "typeNumber"
func ToCamel(s string) string {
	components := strings.Split(s, "_")
	var b strings.Builder
	b.WriteString(components[0])
	for _, word := range components[1:] {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// ToSnake converts a camelCase identifier to snake_case by inserting an
// underscore before every uppercase letter not at position 0, then
// lowercasing the whole string.
//
//	ToSnake("phoneNumbers") == "phone_numbers"
//	ToSnake("typeNumber") == "type_number"
func ToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// capitalize uppercases the first letter and lowercases the rest.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// MapToCamel returns a copy of m with every key recursively renamed via
// ToCamel. Values that are not maps or slices pass through untouched;
// the input is never mutated.
func MapToCamel(m map[string]any) map[string]any {
	return convertMap(m, ToCamel)
}

// MapToSnake returns a copy of m with every key recursively renamed via
// ToSnake.
func MapToSnake(m map[string]any) map[string]any {
	return convertMap(m, ToSnake)
}

// SliceToCamel returns a copy of list with keys of any nested maps
// renamed via ToCamel.
func SliceToCamel(list []any) []any {
	return convertSlice(list, ToCamel)
}

// SliceToSnake returns a copy of list with keys of any nested maps
// renamed via ToSnake.
func SliceToSnake(list []any) []any {
	return convertSlice(list, ToSnake)
}

func convertMap(m map[string]any, rename func(string) string) map[string]any {
	if m == nil {
		return nil
	}
	converted := make(map[string]any, len(m))
	for key, value := range m {
		newKey := rename(key)
		switch v := value.(type) {
		case map[string]any:
			converted[newKey] = convertMap(v, rename)
		case []any:
			converted[newKey] = convertSlice(v, rename)
		default:
			converted[newKey] = value
		}
	}
	return converted
}

func convertSlice(list []any, rename func(string) string) []any {
	if list == nil {
		return nil
	}
	converted := make([]any, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case map[string]any:
			converted = append(converted, convertMap(v, rename))
		case []any:
			converted = append(converted, convertSlice(v, rename))
		default:
			converted = append(converted, item)
		}
	}
	return converted
}
