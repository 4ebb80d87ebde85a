package access

import (
	"time"

	"gym-frontdesk/internal/domain/subscriptions"
)

// Standing is the derived membership state of one client.
type Standing struct {
	Status         Status
	LastPlan       *string
	LastExpiration *time.Time
}

// IsCurrent reports whether a subscription ending on end still grants access on today.
// Both values are compared as calendar days.
func IsCurrent(end, today time.Time) bool {
	return !DateOnly(end).Before(DateOnly(today))
}

// Latest returns the subscription holding the maximum end date. Among equal end
// dates the highest id wins, the same order as "end_date DESC, id DESC".
func Latest(subs []subscriptions.Subscription) *subscriptions.Subscription {
	var latest *subscriptions.Subscription
	for i := range subs {
		s := &subs[i]
		if latest == nil {
			latest = s
			continue
		}
		end, best := DateOnly(s.EndDate), DateOnly(latest.EndDate)
		if end.After(best) || (end.Equal(best) && s.ID > latest.ID) {
			latest = s
		}
	}
	return latest
}

// Resolve maps a client's subscription history to its standing on today.
func Resolve(today time.Time, subs []subscriptions.Subscription) Standing {
	latest := Latest(subs)
	if latest == nil {
		return Standing{Status: StatusNeverEnrolled}
	}

	end := DateOnly(latest.EndDate)
	st := Standing{
		Status:         StatusInactive,
		LastExpiration: &end,
	}
	if latest.Plan != nil {
		name := latest.Plan.Name
		st.LastPlan = &name
	}
	if IsCurrent(end, today) {
		st.Status = StatusActive
	}
	return st
}
