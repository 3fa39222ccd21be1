package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClothingShop/internal/catalog"
	"ClothingShop/pkg/opt"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"2", 2, true},
		{"42", 42, true},
		{"-3", -3, true},
		{"+5", 5, true},
		{"x", 0, false},
		{"", 0, false},
		{" 2", 0, false},
		{"2.0", 0, false},
		{"1e3", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := catalog.ParseID(tt.in).Get()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_Scenario(t *testing.T) {
	r := catalog.NewResolver(catalog.MustNewStore([]catalog.Product{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}))

	b, ok := r.Resolve(opt.Some(2)).Get()
	require.True(t, ok)
	assert.Equal(t, "B", b.Name)

	assert.False(t, r.Resolve(opt.Some(3)).IsSome())

	b, ok = r.Resolve(catalog.ParseID("2")).Get()
	require.True(t, ok)
	assert.Equal(t, "B", b.Name)

	assert.False(t, r.Resolve(catalog.ParseID("x")).IsSome())
	assert.False(t, r.Resolve(opt.None[int]()).IsSome())
}

func TestResolver_RoundTrip(t *testing.T) {
	s, err := catalog.LoadDefault()
	require.NoError(t, err)
	r := catalog.NewResolver(s)

	for _, p := range s.ListAll() {
		got, ok := r.ResolveRaw(catalog.FormatID(p.ID)).Get()
		require.True(t, ok, "id=%d", p.ID)
		assert.Equal(t, p, got)
	}
}

func TestResolver_NonNumericStringsAreAbsent(t *testing.T) {
	r := catalog.NewResolver(catalog.MustNewStore(twoProducts()))

	for _, raw := range []string{"x", "one", "1a", "0x1", "productDetail", "%20"} {
		assert.False(t, r.ResolveRaw(raw).IsSome(), "raw=%q", raw)
	}
}
