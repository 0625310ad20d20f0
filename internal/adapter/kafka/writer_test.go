package kafka

import (
	"testing"
	"time"

	"github.com/addressforge/address-normalizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 10, 0, 0, time.UTC)
	lat, lng := 41.31815, -72.93277
	address := domain.Address{
		ID:           "address.123",
		Type:         domain.AddressTypeHome,
		Country:      "us",
		SubDivision:  "ct",
		Line1:        "55 Foote St Dixwell",
		PostalCode:   "06511",
		Latitude:     &lat,
		Longitude:    &lng,
		NormalizedAt: now,
	}

	msg, err := serializeToMessage("55 foote st", address)
	require.NoError(t, err)

	assert.Equal(t, []byte("address.123"), msg.Key)
	assert.Contains(t, string(msg.Value), `"country":"us"`)
	assert.Contains(t, string(msg.Value), `"sub_division":"ct"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "address_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("home"), msg.Headers[0].Value)
	assert.Equal(t, "normalized_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestSerializeToMessage_KeyFallsBackToQuery(t *testing.T) {
	address := domain.Address{
		Type:        domain.AddressTypeOther,
		Country:     "us",
		SubDivision: "ct",
	}

	msg, err := serializeToMessage("55 foote st", address)
	require.NoError(t, err)
	assert.Equal(t, []byte("55 foote st"), msg.Key)
}
