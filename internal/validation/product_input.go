// Package validation turns raw form input into entities, reporting the first
// field that fails so the caller can send the user back to it.
package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"inventory/internal/models"
)

// ProductInput holds product fields exactly as the user typed them.
type ProductInput struct {
	Name        string
	Category    string
	Price       string
	Quantity    string
	Description string
}

// CheckProduct validates in, in the order name, category, price, quantity,
// and builds the product. Only the first failure is returned.
func CheckProduct(in ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Kind: models.EmptyField}
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, &models.ValidationError{Field: "category", Kind: models.EmptyField}
	}
	price, err := ParsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	quantity, err := ParseQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	return models.NewProduct(name, category, price, quantity, strings.TrimSpace(in.Description))
}

// ParsePrice reads a non-negative real number. NaN, infinities and values
// too large for a float64 are not accepted.
func ParsePrice(raw string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, &models.ValidationError{Field: "price", Kind: models.InvalidFormat}
	}
	if d.IsNegative() {
		return 0, &models.ValidationError{Field: "price", Kind: models.NegativeValue}
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, &models.ValidationError{Field: "price", Kind: models.InvalidFormat}
	}
	return f, nil
}

// ParseQuantity reads a non-negative base-10 integer.
func ParseQuantity(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &models.ValidationError{Field: "quantity", Kind: models.InvalidFormat}
	}
	if n < 0 {
		return 0, &models.ValidationError{Field: "quantity", Kind: models.NegativeValue}
	}
	return n, nil
}

// ParseID reads a positive storage id.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, &models.ValidationError{Field: "id", Kind: models.InvalidFormat}
	}
	return id, nil
}
