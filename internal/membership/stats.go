package membership

import (
	"context"
	"encoding/json"
	"time"

	"gym-frontdesk/internal/domain/plans"
	"gym-frontdesk/internal/logger"
)

const (
	statsCacheKey = "gym:stats:v1"

	dailyWindowDays   = 30
	recentVisitWindow = 24 * time.Hour
	recentVisitLimit  = 20
)

type Bucket struct {
	Name   string `json:"name"`
	Visits int    `json:"visits"`
}

type Totals struct {
	TotalClients  int64 `json:"total_clients"`
	ActiveClients int64 `json:"active_clients"`
}

type Stats struct {
	Daily   []Bucket `json:"daily"`
	Monthly []Bucket `json:"monthly"`
	Totals  Totals   `json:"totals"`
}

type RecentVisit struct {
	ID        uint      `json:"id"`
	VisitedAt time.Time `json:"visited_at"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// GetStats aggregates visits of the last 30 days by day and of the last year by
// month, plus client totals.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		raw, ok, err := s.cache.Get(ctx, statsCacheKey)
		if err != nil {
			log.Warn("[stats][cache] read failed", "error", err)
		}
		if ok {
			var cached Stats
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			log.Warn("[stats][cache] dropping unreadable entry")
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, string(raw), s.statsTTL); err != nil {
				log.Warn("[stats][cache] write failed", "error", err)
			}
		}
	}
	return stats, nil
}

func (s *Service) computeStats(ctx context.Context) (*Stats, error) {
	today := s.today()

	// The yearly window covers the daily one, so one read serves both.
	yearStart := startOfDay(today.AddDate(-1, 0, 0), s.loc)
	dayStart := startOfDay(today.AddDate(0, 0, -dailyWindowDays), s.loc)

	list, err := s.repo.VisitsSince(ctx, yearStart)
	if err != nil {
		return nil, storeErr(err, domainStats)
	}

	daily := newCounter()
	monthly := newCounter()
	for _, v := range list {
		at := v.VisitedAt.In(s.loc)
		if !at.Before(dayStart) {
			daily.add(at.Format("2006-01-02"), at.Format("02/01"))
		}
		monthly.add(at.Format("2006-01"), at.Month().String())
	}

	total, err := s.repo.CountClients(ctx)
	if err != nil {
		return nil, storeErr(err, domainStats)
	}
	active, err := s.repo.CountActiveClients(ctx, today)
	if err != nil {
		return nil, storeErr(err, domainStats)
	}

	return &Stats{
		Daily:   daily.buckets(),
		Monthly: monthly.buckets(),
		Totals:  Totals{TotalClients: total, ActiveClients: active},
	}, nil
}

// RecentVisits lists the visits of the last 24 hours, newest first.
func (s *Service) RecentVisits(ctx context.Context) ([]RecentVisit, error) {
	list, err := s.repo.RecentVisits(ctx, s.now().UTC().Add(-recentVisitWindow), recentVisitLimit)
	if err != nil {
		return nil, storeErr(err, domainVisits)
	}

	out := make([]RecentVisit, 0, len(list))
	for _, v := range list {
		out = append(out, RecentVisit{
			ID:        v.ID,
			VisitedAt: v.VisitedAt,
			FirstName: v.Client.FirstName,
			LastName:  v.Client.LastName,
		})
	}
	return out, nil
}

// GetPlans lists the plans that can be sold, cheapest first.
func (s *Service) GetPlans(ctx context.Context) ([]plans.Plan, error) {
	list, err := s.repo.ListSellablePlans(ctx)
	if err != nil {
		return nil, storeErr(err, domainPlans)
	}
	if list == nil {
		list = []plans.Plan{}
	}
	return list, nil
}

func (s *Service) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		logger.FromContext(ctx).Warn("[stats][cache] invalidate failed", "error", err)
	}
}

// startOfDay is the first instant of calendar day d in loc.
func startOfDay(d time.Time, loc *time.Location) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc).UTC()
}

// counter keeps buckets in first-seen order; visits arrive oldest first so
// that order is chronological.
type counter struct {
	index map[string]int
	out   []Bucket
}

func newCounter() *counter {
	return &counter{index: map[string]int{}, out: []Bucket{}}
}

func (c *counter) add(key, label string) {
	i, ok := c.index[key]
	if !ok {
		i = len(c.out)
		c.index[key] = i
		c.out = append(c.out, Bucket{Name: label})
	}
	c.out[i].Visits++
}

func (c *counter) buckets() []Bucket {
	return c.out
}
