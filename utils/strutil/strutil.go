package strutil

import "strings"

func StartsWith[S ~string](s, prefix S) bool {
	return strings.HasPrefix(string(s), string(prefix))
}

// ReplaceSubstr replaces every occurrence of target in s. An empty target
// leaves s as is.
func ReplaceSubstr[S ~string](s, target, replacement S) S {
	if len(target) == 0 {
		return s
	}
	return S(strings.ReplaceAll(string(s), string(target), string(replacement)))
}
