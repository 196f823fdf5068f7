package validation

import "inventory/internal/models"

// BuyerInput holds buyer fields exactly as the user typed them.
type BuyerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// CheckBuyer validates in and builds the buyer.
func CheckBuyer(in BuyerInput) (*models.Buyer, error) {
	return models.NewBuyer(in.Name, in.Email, in.Phone, in.Address)
}
