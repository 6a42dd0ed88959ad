package dialog

// Record is the untyped key/value description of a single control, as
// authored by the extension script (or loaded from a declaration document).
// Values are generic dynamic values: strings, numbers, booleans, nested
// []any lists.
type Record map[string]any

// The get* accessors implement the lenient-defaulting extraction policy: a
// missing key or a value of the wrong dynamic type returns the supplied
// default unchanged. No extraction ever fails.

func getString(r Record, key, def string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return def
}

// getInt tolerates every numeric shape the dynamic sources produce: Lua
// numbers arrive as float64, JSON as float64, YAML as int, Go literals as
// int or int64.
func getInt(r Record, key string, def int) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

func getFloat(r Record, key string, def float64) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

func getBool(r Record, key string, def bool) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return def
}

// getStrings reads an ordered list of strings. Non-string elements are
// skipped rather than rejected, matching the tolerant extraction tier.
func getStrings(r Record, key string) []string {
	list, ok := r[key].([]any)
	if !ok {
		if typed, ok := r[key].([]string); ok {
			out := make([]string, len(typed))
			copy(out, typed)
			return out
		}
		return nil
	}
	var out []string
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
