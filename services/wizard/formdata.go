// File: services/wizard/formdata.go
package wizard

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormData is the accumulating record of user inputs for one wizard run.
// Keys are only ever added or overwritten; nothing removes them implicitly.
type FormData map[string]any

// Containers merged one level deep instead of being replaced wholesale, so an
// update to one nested field never clobbers siblings written by another step.
var nestedContainers = map[string]bool{
	"additionalSettings": true,
	"serviceDetails":     true,
}

// Update shallow-merges top-level keys from partial. Registered nested
// containers are merged key-wise.
func (f FormData) Update(partial FormData) {
	for k, v := range partial {
		if nestedContainers[k] {
			if sub, ok := asMap(v); ok {
				existing, _ := asMap(f[k])
				if existing == nil {
					existing = map[string]any{}
				}
				for nk, nv := range sub {
					existing[nk] = nv
				}
				f[k] = existing
				continue
			}
		}
		f[k] = v
	}
}

// Clone copies the form one container level deep. Values below that are
// shared; callers treat them as read-only.
func (f FormData) Clone() FormData {
	out := make(FormData, len(f))
	for k, v := range f {
		if sub, ok := asMap(v); ok && nestedContainers[k] {
			copied := make(map[string]any, len(sub))
			for nk, nv := range sub {
				copied[nk] = nv
			}
			out[k] = copied
			continue
		}
		out[k] = v
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case FormData:
		return map[string]any(m), true
	default:
		return nil, false
	}
}

// String returns the trimmed string value at key, or "" when absent or not a string.
func (f FormData) String(key string) string {
	s, _ := f[key].(string)
	return strings.TrimSpace(s)
}

// Int returns the integer at key. JSON decoding yields float64, so both
// representations are accepted.
func (f FormData) Int(key string) (int, bool) {
	switch n := f[key].(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// Float returns the numeric value at key.
func (f FormData) Float(key string) (float64, bool) {
	switch n := f[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// Bool returns the boolean at key, false when absent.
func (f FormData) Bool(key string) bool {
	b, _ := f[key].(bool)
	return b
}

// Section returns the nested container at key, nil when absent.
func (f FormData) Section(key string) FormData {
	m, _ := asMap(f[key])
	return FormData(m)
}

// Decode re-marshals the value at key into a typed destination. This is the
// shape boundary: step payloads arrive as generic JSON and get validated here,
// not deep inside rendering code.
func (f FormData) Decode(key string, out any) error {
	v, ok := f[key]
	if !ok {
		return fmt.Errorf("form field %q is not set", key)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("form field %q cannot be serialized: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("form field %q has unexpected shape: %w", key, err)
	}
	return nil
}
