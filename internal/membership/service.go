package membership

import (
	"time"

	"gym-frontdesk/internal/cache"
	"gym-frontdesk/internal/domain/access"
	"gym-frontdesk/internal/domain/plans"

	"github.com/go-playground/validator/v10"
)

const (
	domainClients       = "clients"
	domainPlans         = "plans"
	domainSubscriptions = "subscriptions"
	domainVisits        = "visits"
	domainStats         = "stats"
)

// Service is the front-desk membership core. It is safe for concurrent use;
// every call is one unit of work against the store.
type Service struct {
	repo     Repository
	validate *validator.Validate
	resolver plans.ImportResolver

	cache    cache.Cache
	statsTTL time.Duration

	loc *time.Location
	now func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the zone in which calendar days are taken.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithImportResolver sets the plan strategy for migrated clients.
// A nil resolver disables the import subscription.
func WithImportResolver(r plans.ImportResolver) Option {
	return func(s *Service) { s.resolver = r }
}

// WithStatsCache serves GetStats from c for ttl.
func WithStatsCache(c cache.Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.statsTTL = ttl
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		validate: newValidator(),
		resolver: plans.ByNameThenKeyword("mensual"),
		statsTTL: 60 * time.Second,
		loc:      time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() time.Time {
	return access.Today(s.now(), s.loc)
}
