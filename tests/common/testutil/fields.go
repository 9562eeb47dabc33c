//go:build unit || e2e

package testutil

// Field returns a mutation that sets (or, for a nil value, removes) one
// key of a request map. Used to probe validation one field at a time.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
