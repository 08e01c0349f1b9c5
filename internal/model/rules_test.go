package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	assert.True(t, IsLowStock(0))
	assert.True(t, IsLowStock(9))
	assert.False(t, IsLowStock(10))
	assert.False(t, IsLowStock(25))
}

func TestIsNearExpiry(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 42, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   bool
	}{
		{"today", now, true},
		{"today at midnight", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), true},
		{"in two days", now.AddDate(0, 0, 2), true},
		{"window edge inclusive", now.AddDate(0, 0, 7), true},
		{"one day past window", now.AddDate(0, 0, 8), false},
		{"yesterday", now.AddDate(0, 0, -1), false},
		{"far future", now.AddDate(0, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNearExpiry(tt.expiry, now))
		})
	}
}

func TestIsNearExpiryAcrossTimezones(t *testing.T) {
	// Hosts west of UTC see stored UTC-midnight expiry dates "yesterday" as
	// an instant; the comparison must still go by calendar day.
	westOfUTC := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, westOfUTC)

	expiresToday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsNearExpiry(expiresToday, now))

	windowEdge := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsNearExpiry(windowEdge, now))

	pastWindow := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsNearExpiry(pastWindow, now))

	expired := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsNearExpiry(expired, now))

	// And the mirror case: host east of UTC
	eastOfUTC := time.FixedZone("UTC+9", 9*60*60)
	assert.True(t, IsNearExpiry(expiresToday, time.Date(2026, 8, 31, 10, 0, 0, 0, eastOfUTC)))
}

func TestAlertMessages(t *testing.T) {
	p := &Product{Name: "Rice", Category: "Grain", Unit: "kg"}

	assert.Equal(t, "Low stock alert: Rice has less than 10 kg in inventory.", LowStockMessage(p))

	expiry := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Near expiry alert: Rice will expire on 2026-09-02.", NearExpiryMessage(p, expiry))
}
