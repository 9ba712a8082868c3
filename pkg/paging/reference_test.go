package paging

import (
	"testing"

	"github.com/DjordjeVuckovic/ship-console/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    pagination.Cursor
		wantErr bool
	}{
		{name: "relative", ref: "/api/v1/app?offset=50&limit=50", want: pagination.Cursor{Offset: 50, Limit: 50}},
		{name: "absolute", ref: "http://localhost:8080/api/v1/app?limit=25&offset=0", want: pagination.Cursor{Offset: 0, Limit: 25}},
		{name: "extra params", ref: "/api/v1/app?q=&offset=5&limit=5&sort=name", want: pagination.Cursor{Offset: 5, Limit: 5}},
		{name: "missing offset", ref: "/api/v1/app?limit=50", wantErr: true},
		{name: "missing limit", ref: "/api/v1/app?offset=50", wantErr: true},
		{name: "no query", ref: "/api/v1/app", wantErr: true},
		{name: "non numeric", ref: "/api/v1/app?offset=x&limit=50", wantErr: true},
		{name: "unsupported limit", ref: "/api/v1/app?offset=0&limit=3", wantErr: true},
		{name: "unparseable", ref: "http://[::1%zz]/?offset=0&limit=5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReference(tt.ref)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedReference)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
