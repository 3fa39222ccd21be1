package catalog

import (
	"strconv"

	"ClothingShop/pkg/opt"
)

// ParseID reads a route parameter as a decimal integer. It never fails: any
// input strconv.Atoi rejects is simply absent.
func ParseID(raw string) opt.Option[int] {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return opt.None[int]()
	}
	return opt.Some(id)
}

// FormatID is the inverse of ParseID for catalog identifiers.
func FormatID(id int) string {
	return strconv.Itoa(id)
}

type Resolver struct {
	Store *Store
}

func NewResolver(s *Store) *Resolver {
	return &Resolver{Store: s}
}

func (r *Resolver) Resolve(id opt.Option[int]) opt.Option[Product] {
	return opt.FlatMap(id, r.Store.FindByID)
}

func (r *Resolver) ResolveRaw(raw string) opt.Option[Product] {
	return r.Resolve(ParseID(raw))
}
