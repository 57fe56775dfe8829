package fahrinfo

import "encoding/json"

type Product string

const (
	ProductSBahn Product = "SBAHN"
	ProductUBahn Product = "UBAHN"
	ProductBus   Product = "BUS"
	ProductBahn  Product = "BAHN"
	ProductTram  Product = "TRAM"
)

var Products = []Product{ProductSBahn, ProductUBahn, ProductBus, ProductBahn, ProductTram}

func (p Product) Valid() bool {
	switch p {
	case ProductSBahn, ProductUBahn, ProductBus, ProductBahn, ProductTram:
		return true
	default:
		return false
	}
}

func (p Product) DisplayName() string {
	switch p {
	case ProductSBahn:
		return "S-Bahn"
	case ProductUBahn:
		return "U-Bahn"
	case ProductBus:
		return "Bus"
	case ProductBahn:
		return "Regionalbahn"
	case ProductTram:
		return "Tram"
	default:
		return string(p)
	}
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}

	product := Product(token)
	if !product.Valid() {
		return &UnknownVariantError{Union: "Product", Value: token}
	}

	*p = product
	return nil
}

// ParseProduct accepts the upper-case wire token.
func ParseProduct(token string) (Product, error) {
	product := Product(token)
	if !product.Valid() {
		return "", &UnknownVariantError{Union: "Product", Value: token}
	}
	return product, nil
}
