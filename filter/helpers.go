package filter

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// gweiPerEther scales Gwei amounts to ether
const gweiPerEther = 9

// helpers returns the functions available to expressions. fields is the
// record being evaluated; it is nil at compile time.
func helpers(fields map[string]any) map[string]any {
	return map[string]any{
		// Field helpers
		"has": func(name string) bool {
			v, ok := fields[name]
			return ok && v != nil
		},
		"includes": func(name, value string) bool {
			match := func(s string) bool { return strings.EqualFold(s, value) }
			switch list := fields[name].(type) {
			case []string:
				return slices.ContainsFunc(list, match)
			case []any:
				return slices.ContainsFunc(list, func(v any) bool {
					s, ok := v.(string)
					return ok && match(s)
				})
			}
			return false
		},

		// Unit helpers
		"eth": func(gwei any) float64 {
			d, ok := toDecimal(gwei)
			if !ok {
				return 0
			}
			return d.Shift(-gweiPerEther).InexactFloat64()
		},

		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case float64:
		return decimal.NewFromFloat(n), true
	case string:
		d, err := decimal.NewFromString(n)
		return d, err == nil
	}
	return decimal.Decimal{}, false
}
