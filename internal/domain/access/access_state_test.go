package access

import (
	"testing"
	"time"

	"gym-frontdesk/internal/domain/plans"
	"gym-frontdesk/internal/domain/subscriptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sub(id uint, end string, plan string) subscriptions.Subscription {
	return subscriptions.Subscription{
		ID:      id,
		EndDate: date(end),
		Plan:    &plans.Plan{Name: plan},
	}
}

func TestResolveStatus(t *testing.T) {
	today := date("2024-03-01")

	tests := []struct {
		name string
		subs []subscriptions.Subscription
		want Status
	}{
		{name: "no subscriptions", subs: nil, want: StatusNeverEnrolled},
		{name: "ends today", subs: []subscriptions.Subscription{sub(1, "2024-03-01", "Mensual")}, want: StatusActive},
		{name: "ends tomorrow", subs: []subscriptions.Subscription{sub(1, "2024-03-02", "Mensual")}, want: StatusActive},
		{name: "ended yesterday", subs: []subscriptions.Subscription{sub(1, "2024-02-29", "Mensual")}, want: StatusInactive},
		{
			name: "old expired row does not hide a current one",
			subs: []subscriptions.Subscription{sub(1, "2024-05-01", "Anual"), sub(2, "2024-01-01", "Mensual")},
			want: StatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(today, tt.subs).Status)
		})
	}
}

func TestResolveNeverEnrolledHasNoDisplayFields(t *testing.T) {
	st := Resolve(date("2024-03-01"), nil)

	assert.Nil(t, st.LastPlan)
	assert.Nil(t, st.LastExpiration)
}

func TestResolveReportsLatestSubscription(t *testing.T) {
	subs := []subscriptions.Subscription{
		sub(7, "2024-03-05", "Trimestral"),
		sub(9, "2024-01-10", "Mensual"),
	}

	st := Resolve(date("2024-02-01"), subs)

	require.NotNil(t, st.LastPlan)
	require.NotNil(t, st.LastExpiration)
	assert.Equal(t, "Trimestral", *st.LastPlan)
	assert.Equal(t, "2024-03-05", FormatDate(*st.LastExpiration))
	assert.Equal(t, StatusActive, st.Status)
}

func TestLatestTieBreaksOnHighestID(t *testing.T) {
	subs := []subscriptions.Subscription{
		sub(3, "2024-03-05", "Mensual"),
		sub(8, "2024-03-05", "Anual"),
		sub(5, "2024-03-05", "Trimestral"),
	}

	latest := Latest(subs)

	require.NotNil(t, latest)
	assert.Equal(t, uint(8), latest.ID)
	assert.Equal(t, "Anual", *Resolve(date("2024-03-01"), subs).LastPlan)
}

func TestResolveWithoutPreloadedPlan(t *testing.T) {
	subs := []subscriptions.Subscription{{ID: 1, EndDate: date("2024-03-05")}}

	st := Resolve(date("2024-03-01"), subs)

	assert.Equal(t, StatusActive, st.Status)
	assert.Nil(t, st.LastPlan)
}

func TestIsCurrentIgnoresTimeOfDay(t *testing.T) {
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	lateToday := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)

	assert.True(t, IsCurrent(end, lateToday))
	assert.False(t, IsCurrent(end, lateToday.Add(time.Minute)))
}

func TestTodayUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2024, 3, 2, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-01", FormatDate(Today(now, loc)))
	assert.Equal(t, "2024-03-02", FormatDate(Today(now, time.UTC)))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2024-03-31", FormatDate(AddDays(date("2024-03-01"), 30)))
	assert.Equal(t, "2025-02-28", FormatDate(AddDays(date("2024-02-29"), 365)))
}
