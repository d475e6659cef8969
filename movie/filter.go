package movie

import "strings"

func matches(m Movie, name, genre *string) bool {
	return containsFold(m.MovieName, name) && containsFold(m.Genre, genre)
}

// containsFold reports whether field contains the trimmed term ignoring ASCII
// case. A nil or blank term matches everything.
func containsFold(field string, term *string) bool {
	if term == nil {
		return true
	}
	t := strings.TrimSpace(*term)
	if t == "" {
		return true
	}
	return strings.Contains(lowerASCII(field), lowerASCII(t))
}

// lowerASCII folds A-Z only; other runes are left untouched.
func lowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
