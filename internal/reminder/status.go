package reminder

import (
	"time"

	"family-records-api/internal/domain/entity"
)

// Status classifies a document-like record against its expiry date.
type Status string

const (
	StatusNoExpiry     Status = "no_expiry"
	StatusActive       Status = "active"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
)

// expiringSoonWindow promotes an unexpired record from Active to
// ExpiringSoon. Fixed 30-day window, measured in wall-clock duration.
const expiringSoonWindow = 30 * 24 * time.Hour

// Classify classifies an optional stored date string relative to now.
// An absent or unparseable date yields NoExpiry: missing data is not an
// error here, it simply means nothing is tracked.
func Classify(now time.Time, expiry string) Status {
	if expiry == "" {
		return StatusNoExpiry
	}
	d, err := ParseDate(expiry, now.Location())
	if err != nil {
		return StatusNoExpiry
	}
	return classifyAt(startOfDay(now), endOfDay(d))
}

// classifyAt compares two already-normalized instants: today at local
// midnight against the expiry at end-of-day.
func classifyAt(today, expiry time.Time) Status {
	if expiry.Before(today) {
		return StatusExpired
	}
	if expiry.Sub(today) <= expiringSoonWindow {
		return StatusExpiringSoon
	}
	return StatusActive
}

// NeedsAttention reports whether a status warrants a warning badge.
func (s Status) NeedsAttention() bool {
	return s == StatusExpired || s == StatusExpiringSoon
}

// VehicleNeedsAttention reports whether any of the vehicle's papers is
// expired or expiring soon. Used for card-level badges only; the reminder
// feed evaluates each paper independently.
func VehicleNeedsAttention(now time.Time, v *entity.Vehicle) bool {
	for _, doc := range v.Documents {
		if Classify(now, doc.TrackedDate()).NeedsAttention() {
			return true
		}
	}
	return false
}
