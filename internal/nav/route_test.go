package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClothingShop/internal/catalog"
	"ClothingShop/internal/nav"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want nav.Route
	}{
		{"home", nav.HomeRoute()},
		{"/home", nav.HomeRoute()},
		{"productDetail/2", nav.Route{Name: nav.ProductDetail, ProductID: "2"}},
		{"/productDetail/2", nav.Route{Name: nav.ProductDetail, ProductID: "2"}},
		{"productDetail/x", nav.Route{Name: nav.ProductDetail, ProductID: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := nav.ParseRoute(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoute_Unknown(t *testing.T) {
	for _, p := range []string{"", "/", "cart", "productDetail", "productDetail/", "productDetail/1/2", "home/1", "HOME"} {
		_, err := nav.ParseRoute(p)
		assert.ErrorIs(t, err, nav.ErrUnknownRoute, "path=%q", p)
	}
}

func TestRoute_PathRoundTrip(t *testing.T) {
	for _, r := range []nav.Route{nav.HomeRoute(), nav.ProductDetailRoute(4), {Name: nav.ProductDetail, ProductID: "abc"}} {
		got, err := nav.ParseRoute(r.Path())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

func TestProductDetailRoute_ResolvesBack(t *testing.T) {
	s, err := catalog.LoadDefault()
	require.NoError(t, err)
	res := catalog.NewResolver(s)

	for _, p := range s.ListAll() {
		r := nav.ProductDetailRoute(p.ID)
		assert.Equal(t, "productDetail/"+catalog.FormatID(p.ID), r.Path())

		got, ok := res.ResolveRaw(r.ProductID).Get()
		require.True(t, ok)
		assert.Equal(t, p, got)
	}
}
