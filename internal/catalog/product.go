package catalog

import "strconv"

// CurrencySuffix is appended to prices in display labels. Prices are whole dong.
const CurrencySuffix = "đ"

type Review struct {
	Author  string `json:"author" yaml:"author"`
	Rating  int    `json:"rating" yaml:"rating"`
	Comment string `json:"comment" yaml:"comment"`
}

type Product struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       int64    `json:"price" yaml:"price"`
	Image       string   `json:"image" yaml:"image"`
	Description string   `json:"description" yaml:"description"`
	Reviews     []Review `json:"reviews" yaml:"reviews"`
}

// Summary is the list-row projection of a Product.
type Summary struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	PriceLabel string `json:"price_label"`
	Image      string `json:"image"`
}

func (p Product) Summary() Summary {
	return Summary{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		PriceLabel: PriceLabel(p.Price),
		Image:      p.Image,
	}
}

func PriceLabel(price int64) string {
	return strconv.FormatInt(price, 10) + CurrencySuffix
}

func (p Product) clone() Product {
	out := p
	out.Reviews = make([]Review, len(p.Reviews))
	copy(out.Reviews, p.Reviews)
	return out
}
