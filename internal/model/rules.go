package model

import (
	"fmt"
	"time"
)

const (
	// LowStockThreshold is the total quantity below which a product is low on stock.
	LowStockThreshold = 10
	// NearExpiryWindowDays is how many days ahead a batch counts as near expiry.
	NearExpiryWindowDays = 7
)

// IsLowStock reports whether a product's total quantity across all batches
// is below the threshold.
func IsLowStock(totalQuantity int) bool {
	return totalQuantity < LowStockThreshold
}

// IsNearExpiry reports whether expiry falls within the next
// NearExpiryWindowDays days, inclusive on both ends. Each operand is reduced
// to its own calendar date, so the comparison is day-granular regardless of
// the zones involved; already-expired batches are not "near expiry".
func IsNearExpiry(expiry, now time.Time) bool {
	today := truncateToDay(now)
	day := truncateToDay(expiry)
	limit := today.AddDate(0, 0, NearExpiryWindowDays)
	return !day.Before(today) && !day.After(limit)
}

// truncateToDay keeps the wall-clock date and discards the zone, so dates
// from different zones compare by calendar day.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LowStockMessage builds the alert message for a low stock condition.
func LowStockMessage(p *Product) string {
	return fmt.Sprintf("Low stock alert: %s has less than %d %s in inventory.", p.Name, LowStockThreshold, p.Unit)
}

// NearExpiryMessage builds the alert message for a near expiry condition.
func NearExpiryMessage(p *Product, expiry time.Time) string {
	return fmt.Sprintf("Near expiry alert: %s will expire on %s.", p.Name, expiry.Format("2006-01-02"))
}
