package domain

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerProfile carries the checkout contact data. Profiles are upserted
// keyed by phone: name, address, neighborhood and reference are overwritten
// on repeat orders, the phone itself never changes once stored.
// PaymentMethod and Notes belong to the session, not the stored profile.
type CustomerProfile struct {
	ID            primitive.ObjectID `json:"id,omitempty"`
	Name          string             `json:"name"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	Neighborhood  string             `json:"neighborhood"`
	Reference     string             `json:"reference,omitempty"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at,omitempty"`
}

// Validate checks the fields an order cannot be submitted without.
func (p CustomerProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingRequiredField)
	}
	if strings.TrimSpace(p.Phone) == "" {
		return fmt.Errorf("%w: phone", ErrMissingRequiredField)
	}
	if strings.TrimSpace(p.Address) == "" {
		return fmt.Errorf("%w: address", ErrMissingRequiredField)
	}
	return nil
}

// FormatPhone renders a Brazilian mobile number as (DD) NNNNN-NNNN.
// Anything that is not an 11-digit number is returned as-is.
func FormatPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	cleaned := digits.String()
	if len(cleaned) != 11 {
		return phone
	}
	return fmt.Sprintf("(%s) %s-%s", cleaned[:2], cleaned[2:7], cleaned[7:])
}
