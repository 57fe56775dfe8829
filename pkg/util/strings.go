package util

import (
	"strings"
	"unicode/utf8"
)

func RemoveDuplicateStrings(strings []string, ignoreList []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, ignoreString := range ignoreList {
		presentStrings[ignoreString] = true
	}

	for _, item := range strings {
		if _, value := presentStrings[item]; !value && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}
	return list
}

// TrimString cuts s to at most length runes so umlauts are never split.
func TrimString(s string, length int) string {
	if length <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= length {
		return s
	}

	runes := []rune(s)
	return string(runes[:length])
}

// PadString right-pads s with spaces up to length runes, trimming if longer.
func PadString(s string, length int) string {
	s = TrimString(s, length)

	missing := length - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return s + strings.Repeat(" ", missing)
}
