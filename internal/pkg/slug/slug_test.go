//go:build unit

package slug_test

import (
	"testing"

	"lumina-hotel-api/internal/pkg/slug"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple name", input: "Quantum Suite", want: "quantum-suite"},
		{name: "already lowercase", input: "garden-view", want: "garden-view"},
		{name: "punctuation collapsed", input: "Chef's Table & Bar", want: "chef-s-table-bar"},
		{name: "digits kept", input: "Suite 42", want: "suite-42"},
		{name: "surrounding whitespace", input: "  Presidential Suite  ", want: "presidential-suite"},
		{name: "consecutive separators", input: "Deluxe -- King", want: "deluxe-king"},
		{name: "trailing punctuation", input: "Ocean View!", want: "ocean-view"},
		{name: "empty input", input: "", want: ""},
		{name: "only punctuation", input: "!!!", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slug.Make(tc.input))
		})
	}
}
