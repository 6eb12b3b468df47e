package decode

import "strings"

// Snake converts a lowerCamelCase key to snake_case. Every uppercase letter
// starts a new word; digits stay attached to the preceding word.
func Snake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)

	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 && key[i-1] != '_' {
				b.WriteByte('_')
			}
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}

	return b.String()
}

// Decamelize returns a copy of m with every top-level key converted by Snake.
// Values, including nested objects and arrays, are passed through unchanged.
func Decamelize(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[Snake(k)] = v
	}
	return out
}
