package membership

import (
	"context"
	"testing"
	"time"

	"gym-frontdesk/internal/apperr"
	"gym-frontdesk/internal/domain/access"
	"gym-frontdesk/internal/domain/visits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInDeniesWithoutCurrentSubscription(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	never := f.client(t, "Luis", "Perez", "")
	expired := f.client(t, "Ana", "Gomez", "")
	f.subscription(t, expired.ID, "Mensual General", access.AddDays(f.today(), -1))

	for _, id := range []uint{never.ID, expired.ID, 9999} {
		res, err := f.svc.CheckIn(ctx, id)
		require.NoError(t, err)
		assert.False(t, res.Authorized)
		assert.Equal(t, MsgCheckInDenied, res.Message)
	}

	assert.Zero(t, f.count(t, &visits.Visit{}))
}

func TestCheckInAdmitsAndRecordsOneVisit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.client(t, "Marta", "Diaz", "")
	f.subscription(t, c.ID, "Mensual General", f.today())

	res, err := f.svc.CheckIn(ctx, c.ID)
	require.NoError(t, err)

	assert.True(t, res.Authorized)
	assert.Equal(t, MsgCheckInGranted, res.Message)
	assert.NotZero(t, res.VisitID)
	assert.EqualValues(t, 1, f.count(t, &visits.Visit{}, "client_id = ?", c.ID))

	var v visits.Visit
	require.NoError(t, f.db.First(&v, res.VisitID).Error)
	assert.True(t, v.VisitedAt.Equal(fixedNow))
}

func TestCheckInUsesLatestSubscriptionOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.client(t, "Jose", "Ruiz", "")
	f.subscription(t, c.ID, "Anual VIP", access.AddDays(f.today(), 100))
	f.subscription(t, c.ID, "Mensual General", access.AddDays(f.today(), -40))

	res, err := f.svc.CheckIn(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, res.Authorized)
}

func TestCheckInRejectsMissingClient(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CheckIn(context.Background(), 0)

	assert.True(t, apperr.IsValidation(err))
}

func TestCheckInInvalidatesStats(t *testing.T) {
	mc := newMemCache()
	f := newFixture(t, WithStatsCache(mc, 0))
	ctx := context.Background()

	c := f.client(t, "Marta", "Diaz", "")
	f.subscription(t, c.ID, "Mensual General", f.today())

	_, err := f.svc.GetStats(ctx)
	require.NoError(t, err)
	require.Contains(t, mc.data, statsCacheKey)

	_, err = f.svc.CheckIn(ctx, c.ID)
	require.NoError(t, err)

	assert.NotContains(t, mc.data, statsCacheKey)
}

func TestCreateClientInvalidatesStats(t *testing.T) {
	mc := newMemCache()
	f := newFixture(t, WithStatsCache(mc, time.Minute))
	ctx := context.Background()

	before, err := f.svc.GetStats(ctx)
	require.NoError(t, err)
	require.Zero(t, before.Totals.TotalClients)

	_, err = f.svc.CreateClient(ctx, ClientFields{FirstName: "Ana", LastName: "Gomez"}, nil)
	require.NoError(t, err)

	after, err := f.svc.GetStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, after.Totals.TotalClients)
	assert.Equal(t, 1, mc.deletes)
}
