package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a numeric input that accepts JSON numbers and numeric strings.
// Null and the empty string leave it unset so callers can tell absent from zero.
type Number struct {
	value decimal.Decimal
	set   bool
}

// NewNumber returns a set Number holding v.
func NewNumber(v decimal.Decimal) Number {
	return Number{value: v, set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		*n = Number{}
		return nil
	}

	text := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			*n = Number{}
			return nil
		}
	}

	v, err := decimal.NewFromString(text)
	if err != nil {
		return fmt.Errorf("%q is not a number", text)
	}
	*n = Number{value: v, set: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	return []byte(n.value.String()), nil
}

// IsSet reports whether a value was supplied.
func (n Number) IsSet() bool { return n.set }

// Decimal returns the supplied value, or zero when unset.
func (n Number) Decimal() decimal.Decimal { return n.value }

// FlockRequest is the payload for creating a flock. The form aliases
// flockName and flockStatus are accepted alongside name and status.
type FlockRequest struct {
	Name             string `json:"name"`
	FlockName        string `json:"flockName"`
	Breed            string `json:"breed"`
	InitialBirdCount Number `json:"initialBirdCount"`
	AcquisitionDate  string `json:"acquisitionDate"`
	Status           string `json:"status"`
	FlockStatus      string `json:"flockStatus"`
}

// FeedRequest is the payload for recording a feed purchase. feedType is
// accepted as an alias of type.
type FeedRequest struct {
	Type         string `json:"type"`
	FeedType     string `json:"feedType"`
	QuantityKg   Number `json:"quantityKg"`
	PurchaseDate string `json:"purchaseDate"`
	Supplier     string `json:"supplier"`
}

// EggRequest is the payload for logging an egg collection.
type EggRequest struct {
	FlockID  Number `json:"flockId"`
	Date     string `json:"date"`
	Quantity Number `json:"quantity"`
	GradeA   Number `json:"gradeA"`
	GradeB   Number `json:"gradeB"`
}

// MortalityRequest is the payload for recording bird losses.
type MortalityRequest struct {
	FlockID Number `json:"flockId"`
	Date    string `json:"date"`
	Count   Number `json:"count"`
	Cause   string `json:"cause"`
}

// VaccinationRequest is the payload for recording a vaccination.
type VaccinationRequest struct {
	FlockID         Number `json:"flockId"`
	VaccineName     string `json:"vaccineName"`
	Method          string `json:"method"`
	VaccinationDate string `json:"vaccinationDate"`
	Notes           string `json:"notes"`
}

// SaleRequest is the payload for recording a sale.
type SaleRequest struct {
	Item      string `json:"item"`
	Quantity  Number `json:"quantity"`
	UnitPrice Number `json:"unitPrice"`
	SaleDate  string `json:"saleDate"`
	Customer  string `json:"customer"`
}

// SignupRequest is the payload for registering a user.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for exchanging credentials for a token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
