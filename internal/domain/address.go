package domain

import (
	"errors"
	"strings"
	"time"
)

// AddressType categorizes an address by how the provider labeled the place.
type AddressType string

const (
	AddressTypeHome   AddressType = "home"
	AddressTypeOffice AddressType = "office"
	AddressTypeOther  AddressType = "other"
)

// ProviderData preserves provider-specific fields that downstream systems may
// need to re-query or audit the original lookup.
type ProviderData struct {
	SearchString string `json:"search_string,omitempty"`
}

// Address is the canonical, provider-independent address record.
type Address struct {
	ID            string       `json:"id,omitempty"`
	DisplayString string       `json:"display_string,omitempty"`
	Title         string       `json:"title,omitempty"`
	Type          AddressType  `json:"type"`
	Country       string       `json:"country"`      // ISO 3166-1 alpha-2, lowercase
	SubDivision   string       `json:"sub_division"` // ISO 3166-2 region code, lowercase
	Locality      string       `json:"locality,omitempty"`
	Line1         string       `json:"line1,omitempty"`
	Line2         string       `json:"line2,omitempty"`
	PostalCode    string       `json:"postal_code,omitempty"`
	Latitude      *float64     `json:"latitude,omitempty"`
	Longitude     *float64     `json:"longitude,omitempty"`
	ProviderData  ProviderData `json:"provider_data"`
	NormalizedAt  time.Time    `json:"normalized_at"`
}

// NewAddress validates and freezes a candidate record. Country and
// sub-division are required; both are normalized to lowercase. The type
// defaults to AddressTypeOther and NormalizedAt is stamped from the domain
// clock.
func NewAddress(candidate Address) (Address, error) {
	if candidate.Country == "" {
		return Address{}, errors.New("address country is required")
	}
	if candidate.SubDivision == "" {
		return Address{}, errors.New("address sub-division is required")
	}
	if candidate.Type == "" {
		candidate.Type = AddressTypeOther
	}
	candidate.Country = strings.ToLower(candidate.Country)
	candidate.SubDivision = strings.ToLower(candidate.SubDivision)
	candidate.NormalizedAt = clock.Now()
	return candidate, nil
}
