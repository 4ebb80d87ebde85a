package membership

import (
	"context"
	"errors"
	"strings"
	"time"

	"gym-frontdesk/internal/domain/clients"
	"gym-frontdesk/internal/domain/plans"
	"gym-frontdesk/internal/domain/subscriptions"
	"gym-frontdesk/internal/domain/visits"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// likeEscaper makes a search term match literally inside LIKE. "!" is the
// escape character because a backslash needs doubling on MySQL.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// latestFirst is the single ordering used wherever "the latest subscription"
// of a client is picked.
const latestFirst = "end_date DESC, id DESC"

type Repository interface {
	// Transaction runs fn against a repository bound to one store transaction.
	Transaction(ctx context.Context, fn func(Repository) error) error

	// Client operations
	CreateClient(ctx context.Context, client *clients.Client) error
	FindClient(ctx context.Context, id uint) (*clients.Client, error)
	UpdateClient(ctx context.Context, client *clients.Client) error
	DeleteClient(ctx context.Context, id uint) (bool, error)
	SearchClients(ctx context.Context, term string) ([]clients.Client, error)
	ListClients(ctx context.Context) ([]clients.Client, error)
	CountClients(ctx context.Context) (int64, error)

	// Plan operations
	FindPlan(ctx context.Context, id uint) (*plans.Plan, error)
	ListPlans(ctx context.Context) ([]plans.Plan, error)
	ListSellablePlans(ctx context.Context) ([]plans.Plan, error)

	// Subscription operations
	LatestSubscription(ctx context.Context, clientID uint) (*subscriptions.Subscription, error)
	CreateSubscription(ctx context.Context, sub *subscriptions.Subscription) error
	UpdateSubscriptionEnd(ctx context.Context, id uint, end time.Time) error
	CountActiveClients(ctx context.Context, today time.Time) (int64, error)

	// Visit operations
	CreateVisit(ctx context.Context, visit *visits.Visit) error
	VisitsSince(ctx context.Context, since time.Time) ([]visits.Visit, error)
	RecentVisits(ctx context.Context, since time.Time, limit int) ([]visits.Visit, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Transaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepository{db: tx})
	})
}

func (r *gormRepository) CreateClient(ctx context.Context, client *clients.Client) error {
	return r.db.WithContext(ctx).Omit("Subscriptions").Create(client).Error
}

func (r *gormRepository) FindClient(ctx context.Context, id uint) (*clients.Client, error) {
	var client clients.Client
	err := r.db.WithContext(ctx).First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *gormRepository) UpdateClient(ctx context.Context, client *clients.Client) error {
	return r.db.WithContext(ctx).
		Model(client).
		Select("first_name", "last_name", "email", "phone", "dni", "medical_conditions").
		Updates(client).Error
}

// DeleteClient removes visits, then subscriptions, then the client row.
// It reports false when no client row existed.
func (r *gormRepository) DeleteClient(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&visits.Visit{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&subscriptions.Subscription{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&clients.Client{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *gormRepository) withSubscriptions(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Subscriptions.Plan")
}

// SearchClients matches term case-insensitively as a substring of first name,
// last name or dni.
func (r *gormRepository) SearchClients(ctx context.Context, term string) ([]clients.Client, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"

	var out []clients.Client
	err := r.withSubscriptions(ctx).
		Where("LOWER(first_name) LIKE LOWER(?) ESCAPE '!' OR LOWER(last_name) LIKE LOWER(?) ESCAPE '!' OR LOWER(dni) LIKE LOWER(?) ESCAPE '!'",
			pattern, pattern, pattern).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *gormRepository) ListClients(ctx context.Context) ([]clients.Client, error) {
	var out []clients.Client
	err := r.withSubscriptions(ctx).
		Order("first_name ASC").
		Order("last_name ASC").
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *gormRepository) CountClients(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&clients.Client{}).Count(&n).Error
	return n, err
}

func (r *gormRepository) FindPlan(ctx context.Context, id uint) (*plans.Plan, error) {
	var plan plans.Plan
	err := r.db.WithContext(ctx).First(&plan, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *gormRepository) ListPlans(ctx context.Context) ([]plans.Plan, error) {
	var out []plans.Plan
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

// ListSellablePlans returns the plans offered at the desk: active and priced.
func (r *gormRepository) ListSellablePlans(ctx context.Context) ([]plans.Plan, error) {
	var out []plans.Plan
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND price > ?", true, 0).
		Order("price ASC").
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *gormRepository) LatestSubscription(ctx context.Context, clientID uint) (*subscriptions.Subscription, error) {
	var sub subscriptions.Subscription
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order(latestFirst).
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *gormRepository) CreateSubscription(ctx context.Context, sub *subscriptions.Subscription) error {
	return r.db.WithContext(ctx).Omit("Plan").Create(sub).Error
}

func (r *gormRepository) UpdateSubscriptionEnd(ctx context.Context, id uint, end time.Time) error {
	return r.db.WithContext(ctx).
		Model(&subscriptions.Subscription{}).
		Where("id = ?", id).
		Update("end_date", end).Error
}

// CountActiveClients counts distinct clients holding a subscription that ends
// on or after today.
func (r *gormRepository) CountActiveClients(ctx context.Context, today time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&subscriptions.Subscription{}).
		Where("end_date >= ?", today).
		Distinct("client_id").
		Count(&n).Error
	return n, err
}

func (r *gormRepository) CreateVisit(ctx context.Context, visit *visits.Visit) error {
	return r.db.WithContext(ctx).Omit("Client").Create(visit).Error
}

func (r *gormRepository) VisitsSince(ctx context.Context, since time.Time) ([]visits.Visit, error) {
	var out []visits.Visit
	err := r.db.WithContext(ctx).
		Where("visited_at >= ?", since).
		Order("visited_at ASC").
		Find(&out).Error
	return out, err
}

func (r *gormRepository) RecentVisits(ctx context.Context, since time.Time, limit int) ([]visits.Visit, error) {
	var out []visits.Visit
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("visited_at > ?", since).
		Order("visited_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
