package utils

import "strings"

// Partition splits s around the first occurrence of sep.
// It returns (before, sep, after). When sep does not occur in s it
// returns (s, "", "").
func Partition(s, sep string) (string, string, string) {
	before, after, found := strings.Cut(s, sep)
	if !found {
		return s, "", ""
	}
	return before, sep, after
}

// RPartition splits s around the last occurrence of sep.
// It returns (before, sep, after). When sep does not occur in s it
// returns ("", "", s).
func RPartition(s, sep string) (string, string, string) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return "", "", s
	}
	return s[:idx], sep, s[idx+len(sep):]
}
