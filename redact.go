package deltalog

// redact returns a copy of v with every key named in filter removed, at every
// nesting level. sequences are rebuilt element-wise. the input is never
// mutated; non-composite values (and any value when the filter is empty) pass
// through unchanged.
//
// redaction shapes what is reported, never what is detected: it runs only
// when entries are built, after comparison has already decided a change
// exists.
func redact(v interface{}, filter map[string]struct{}) interface{} {
	if len(filter) == 0 {
		return v
	}
	switch x := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for key, val := range x {
			if _, drop := filter[key]; drop {
				continue
			}
			out[key] = redact(val, filter)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, el := range x {
			out[i] = redact(el, filter)
		}
		return out
	default:
		return v
	}
}
