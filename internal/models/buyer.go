package models

import "strings"

// Buyer represents a customer on record. Buyers are not linked to products.
type Buyer struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"not null" validate:"notblank"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// TableName specifies the table name
func (Buyer) TableName() string {
	return "buyers"
}

// NewBuyer builds a buyer that has not been stored yet.
func NewBuyer(name, email, phone, address string) (*Buyer, error) {
	return RestoreBuyer(0, name, email, phone, address)
}

// RestoreBuyer builds a buyer that already has a storage id. All fields are
// trimmed; only the name is required.
func RestoreBuyer(id int64, name, email, phone, address string) (*Buyer, error) {
	b := &Buyer{
		ID:      id,
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks every field of b.
func (b *Buyer) Validate() error {
	return check(b)
}

// SetName replaces the name. b is left unchanged on error.
func (b *Buyer) SetName(name string) error {
	next := *b
	next.Name = strings.TrimSpace(name)
	if err := check(&next, "Name"); err != nil {
		return err
	}
	b.Name = next.Name
	return nil
}

func (b *Buyer) SetEmail(email string)     { b.Email = strings.TrimSpace(email) }
func (b *Buyer) SetPhone(phone string)     { b.Phone = strings.TrimSpace(phone) }
func (b *Buyer) SetAddress(address string) { b.Address = strings.TrimSpace(address) }
