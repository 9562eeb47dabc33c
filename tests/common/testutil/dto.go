//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"
)

// DtoMap marshals a request DTO to a map and applies the given mutations,
// so tests can send payloads binding tags would otherwise make unbuildable.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal dto: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal dto: %v", err)
	}
	for _, mut := range muts {
		mut(m)
	}
	return m
}
