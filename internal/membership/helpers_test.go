package membership

import (
	"context"
	"sync"
	"testing"
	"time"

	"gym-frontdesk/database"
	"gym-frontdesk/internal/domain/access"
	"gym-frontdesk/internal/domain/clients"
	"gym-frontdesk/internal/domain/plans"
	"gym-frontdesk/internal/domain/subscriptions"
	"gym-frontdesk/internal/domain/visits"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixedNow is 2024-03-01 15:00 UTC for every service under test.
var fixedNow = time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

type fixture struct {
	db    *gorm.DB
	svc   *Service
	plans map[string]plans.Plan
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	_, err = database.SeedPlans(db)
	require.NoError(t, err)

	var seeded []plans.Plan
	require.NoError(t, db.Find(&seeded).Error)
	byName := make(map[string]plans.Plan, len(seeded))
	for _, p := range seeded {
		byName[p.Name] = p
	}

	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithLocation(time.UTC),
	}
	svc := NewService(NewRepository(db), append(base, opts...)...)

	return &fixture{db: db, svc: svc, plans: byName}
}

func (f *fixture) today() time.Time {
	return access.Today(fixedNow, time.UTC)
}

func (f *fixture) client(t *testing.T, first, last, dni string) clients.Client {
	t.Helper()
	c := clients.Client{FirstName: first, LastName: last, DNI: dni}
	require.NoError(t, f.db.Create(&c).Error)
	return c
}

func (f *fixture) subscription(t *testing.T, clientID uint, plan string, end time.Time) subscriptions.Subscription {
	t.Helper()
	p, ok := f.plans[plan]
	require.True(t, ok, "unknown plan %q", plan)

	s := subscriptions.Subscription{
		ClientID:      clientID,
		PlanID:        p.ID,
		StartDate:     access.AddDays(end, -p.DurationDays),
		EndDate:       access.DateOnly(end),
		PaymentStatus: subscriptions.PaymentPaid,
		PricePaid:     p.Price,
	}
	require.NoError(t, f.db.Create(&s).Error)
	return s
}

func (f *fixture) visit(t *testing.T, clientID uint, at time.Time) {
	t.Helper()
	require.NoError(t, f.db.Create(&visits.Visit{ClientID: clientID, VisitedAt: at.UTC()}).Error)
}

func (f *fixture) count(t *testing.T, model any, where ...any) int64 {
	t.Helper()
	var n int64
	q := f.db.Model(model)
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := access.ParseDate(s)
	require.NoError(t, err)
	return d
}

// memCache is an in-process cache.Cache.
type memCache struct {
	mu      sync.Mutex
	data    map[string]string
	gets    int
	deletes int
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}}
}

func (m *memCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	delete(m.data, key)
	return nil
}
