// Package casing provides the case conversions used to derive generated identifiers.
package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

// ConvertToUpperCamelCase returns input with its first letter upper cased.
// Word separators (dashes, dots and whitespace) are removed and the letter following them is upper cased.
// If firstCharacterMustBeAlpha is set and the result starts with a digit it is prefixed with an underscore.
// Input that is already upper camel case is returned unchanged.
// Input made only of separators yields one underscore per separator so the result is never empty.
func ConvertToUpperCamelCase(input string, firstCharacterMustBeAlpha bool) string {
	return convert(input, upper, firstCharacterMustBeAlpha)
}

// ConvertToLowerCamelCase returns input with its first letter lower cased.
// Word separators are handled the same way as ConvertToUpperCamelCase.
func ConvertToLowerCamelCase(input string, firstCharacterMustBeAlpha bool) string {
	return convert(input, lower, firstCharacterMustBeAlpha)
}

// TrimWhiteSpaces removes leading and trailing whitespace including line breaks and tabs.
func TrimWhiteSpaces(text string) string {
	return strings.TrimSpace(text)
}

func convert(input string, first cases.Caser, firstCharacterMustBeAlpha bool) string {
	if input == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(input) + 1)

	capitalizeNext := false
	for _, r := range input {
		if isSeparator(r) {
			capitalizeNext = sb.Len() > 0
			continue
		}

		switch {
		case sb.Len() == 0:
			sb.WriteString(first.String(string(r)))
		case capitalizeNext:
			sb.WriteString(upper.String(string(r)))
		default:
			sb.WriteRune(r)
		}
		capitalizeNext = false
	}

	out := sb.String()
	if out == "" {
		return strings.Map(func(rune) rune { return '_' }, input)
	}

	if firstCharacterMustBeAlpha {
		if r, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(r) {
			return "_" + out
		}
	}

	return out
}

func isSeparator(r rune) bool {
	return r == '-' || r == '.' || unicode.IsSpace(r)
}
