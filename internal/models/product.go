package models

import "strings"

// Product represents an item held in inventory.
type Product struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"not null" validate:"notblank"`
	Category    string  `json:"category" validate:"notblank"`
	Price       float64 `json:"price" gorm:"not null" validate:"finite,gte=0"`
	Quantity    int     `json:"quantity" gorm:"not null" validate:"gte=0"`
	Description string  `json:"description"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// NewProduct builds a product that has not been stored yet. It returns a
// *ValidationError and no product when any field is invalid.
func NewProduct(name, category string, price float64, quantity int, description string) (*Product, error) {
	return RestoreProduct(0, name, category, price, quantity, description)
}

// RestoreProduct builds a product that already has a storage id.
func RestoreProduct(id int64, name, category string, price float64, quantity int, description string) (*Product, error) {
	p := &Product{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Category:    strings.TrimSpace(category),
		Price:       price,
		Quantity:    quantity,
		Description: description,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks every field of p.
func (p *Product) Validate() error {
	return check(p)
}

// SetName replaces the name. p is left unchanged on error.
func (p *Product) SetName(name string) error {
	next := *p
	next.Name = strings.TrimSpace(name)
	if err := check(&next, "Name"); err != nil {
		return err
	}
	p.Name = next.Name
	return nil
}

// SetCategory replaces the category. p is left unchanged on error.
func (p *Product) SetCategory(category string) error {
	next := *p
	next.Category = strings.TrimSpace(category)
	if err := check(&next, "Category"); err != nil {
		return err
	}
	p.Category = next.Category
	return nil
}

// SetPrice replaces the price. p is left unchanged on error.
func (p *Product) SetPrice(price float64) error {
	next := *p
	next.Price = price
	if err := check(&next, "Price"); err != nil {
		return err
	}
	p.Price = price
	return nil
}

// SetQuantity replaces the quantity. p is left unchanged on error.
func (p *Product) SetQuantity(quantity int) error {
	next := *p
	next.Quantity = quantity
	if err := check(&next, "Quantity"); err != nil {
		return err
	}
	p.Quantity = quantity
	return nil
}

// SetDescription replaces the description; it has no constraint.
func (p *Product) SetDescription(description string) {
	p.Description = description
}
