// Package nav is the two-destination navigation graph: the home list and a
// product detail leaf reached from it.
package nav

import (
	"errors"
	"fmt"
	"strings"

	"ClothingShop/internal/catalog"
)

const (
	Home          = "home"
	ProductDetail = "productDetail"
)

var (
	ErrUnknownRoute      = errors.New("unknown route")
	ErrInvalidTransition = errors.New("invalid transition")
)

// Route is a destination. ProductID is kept exactly as it appeared in the
// path; turning it into a catalog id is the resolver's job.
type Route struct {
	Name      string `json:"name"`
	ProductID string `json:"product_id,omitempty"`
}

func HomeRoute() Route { return Route{Name: Home} }

func ProductDetailRoute(id int) Route {
	return Route{Name: ProductDetail, ProductID: catalog.FormatID(id)}
}

func (r Route) Path() string {
	if r.Name == ProductDetail {
		return ProductDetail + "/" + r.ProductID
	}
	return r.Name
}

func (r Route) String() string { return r.Path() }

// ParseRoute accepts "home" and "productDetail/{productId}".
func ParseRoute(path string) (Route, error) {
	p := strings.TrimPrefix(path, "/")

	if p == Home {
		return HomeRoute(), nil
	}

	name, param, ok := strings.Cut(p, "/")
	if ok && name == ProductDetail && param != "" && !strings.Contains(param, "/") {
		return Route{Name: ProductDetail, ProductID: param}, nil
	}

	return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
}
