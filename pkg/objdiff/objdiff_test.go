package objdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDifference(t *testing.T) {
	tests := []struct {
		name string
		a    map[string]any
		b    map[string]any
		want map[string]any
	}{
		{
			name: "identical",
			a:    map[string]any{"name": "web", "port": 8080.0},
			b:    map[string]any{"name": "web", "port": 8080.0},
			want: map[string]any{},
		},
		{
			name: "changed scalar takes b value",
			a:    map[string]any{"name": "web", "port": 8080.0},
			b:    map[string]any{"name": "web", "port": 9090.0},
			want: map[string]any{"port": 9090.0},
		},
		{
			name: "dollar keys are skipped",
			a:    map[string]any{"$promise": "x", "$resolved": true},
			b:    map[string]any{"$promise": "y", "$resolved": false},
			want: map[string]any{},
		},
		{
			name: "nested changes are kept, unchanged nested objects dropped",
			a: map[string]any{
				"env":  map[string]any{"DEBUG": "1", "LEVEL": "info"},
				"meta": map[string]any{"owner": "ops"},
			},
			b: map[string]any{
				"env":  map[string]any{"DEBUG": "0", "LEVEL": "info"},
				"meta": map[string]any{"owner": "ops"},
			},
			want: map[string]any{"env": map[string]any{"DEBUG": "0"}},
		},
		{
			name: "arrays compare by index",
			a:    map[string]any{"domains": []any{"a.example.com", "b.example.com"}},
			b:    map[string]any{"domains": []any{"a.example.com", "c.example.com"}},
			want: map[string]any{"domains": map[string]any{"1": "c.example.com"}},
		},
		{
			name: "key missing from b",
			a:    map[string]any{"version": "v1"},
			b:    map[string]any{},
			want: map[string]any{"version": nil},
		},
		{
			name: "nested object missing from b",
			a:    map[string]any{"env": map[string]any{"A": "1"}},
			b:    map[string]any{},
			want: map[string]any{"env": map[string]any{"A": nil}},
		},
		{
			name: "keys only in b are ignored",
			a:    map[string]any{},
			b:    map[string]any{"extra": true},
			want: map[string]any{},
		},
		{
			name: "null in a compares as a scalar",
			a:    map[string]any{"next": nil},
			b:    map[string]any{"next": "/api/v1/app?offset=5&limit=5"},
			want: map[string]any{"next": "/api/v1/app?offset=5&limit=5"},
		},
		{
			name: "empty object in b for changed scalar is dropped",
			a:    map[string]any{"x": 1.0},
			b:    map[string]any{"x": map[string]any{}},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Difference(tt.a, tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Difference() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDifferenceOf(t *testing.T) {
	type app struct {
		Name        string   `json:"name"`
		Maintenance bool     `json:"maintenance"`
		Domains     []string `json:"domains"`
	}

	got, err := DifferenceOf(
		app{Name: "web", Domains: []string{"web.example.com"}},
		app{Name: "web", Maintenance: true, Domains: []string{"web.example.com"}},
	)
	require.NoError(t, err)

	if diff := cmp.Diff(map[string]any{"maintenance": true}, got); diff != "" {
		t.Errorf("DifferenceOf() mismatch (-want +got):\n%s", diff)
	}

	_, err = DifferenceOf([]int{1}, app{})
	require.Error(t, err)
}
