package catalog

import (
	"errors"
	"fmt"

	"ClothingShop/pkg/opt"
)

var (
	ErrInvalidID   = errors.New("product id must be positive")
	ErrDuplicateID = errors.New("duplicate product id")
	ErrBadPrice    = errors.New("product price must be non-negative")
)

// Store is the read-only product catalog. It is built once and has no
// mutating methods; every value handed out is a copy.
type Store struct {
	products []Product
}

func NewStore(products []Product) (*Store, error) {
	seen := make(map[int]struct{}, len(products))
	out := make([]Product, 0, len(products))

	for i, p := range products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product #%d: %w", i, ErrInvalidID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("product id=%d: %w", p.ID, ErrDuplicateID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product id=%d: %w", p.ID, ErrBadPrice)
		}
		seen[p.ID] = struct{}{}
		out = append(out, p.clone())
	}

	return &Store{products: out}, nil
}

// MustNewStore panics on an invalid dataset. Meant for literals in tests and init.
func MustNewStore(products []Product) *Store {
	s, err := NewStore(products)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) Len() int { return len(s.products) }

// ListAll returns the catalog in declaration order.
func (s *Store) ListAll() []Product {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.clone())
	}
	return out
}

func (s *Store) Summaries() []Summary {
	out := make([]Summary, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Summary())
	}
	return out
}

// FindByID scans in declaration order and returns the first match.
func (s *Store) FindByID(id int) opt.Option[Product] {
	for _, p := range s.products {
		if p.ID == id {
			return opt.Some(p.clone())
		}
	}
	return opt.None[Product]()
}
