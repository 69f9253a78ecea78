package jsonls

import "strconv"

// formatAny renders a plain Go value (as produced by GetValue) for
// inclusion in a diagnostic message. Numbers print without a trailing
// ".0" for whole values, matching how a JSON literal would read.
func formatAny(v any) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case []any:
		s := "["
		for i, e := range t {
			if i > 0 {
				s += ","
			}
			s += formatAny(e)
		}
		return s + "]"
	case map[string]any:
		return "object"
	default:
		return formatScalar(v)
	}
}

func joinStrings(parts []string, sep string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += sep
		}
		out += p
	}
	return out
}
