package membership

import (
	"context"
	"time"

	"gym-frontdesk/internal/apperr"
	"gym-frontdesk/internal/domain/access"
	"gym-frontdesk/internal/domain/clients"
	"gym-frontdesk/internal/domain/subscriptions"
	"gym-frontdesk/internal/logger"
)

// ImportOptions carry the membership of a client migrated from an older
// system: the date their paid period ends and, optionally, the plan name it had.
type ImportOptions struct {
	ExpirationDate *time.Time
	PlanName       string
}

// CreateClient validates and stores a new client. With import options it also
// backfills one subscription ending on the given date. A failed backfill is
// logged and never undoes the client.
func (s *Service) CreateClient(ctx context.Context, fields ClientFields, opts *ImportOptions) (ClientWithStatus, error) {
	fields = fields.trimmed()
	if err := s.checkClientFields(fields); err != nil {
		return ClientWithStatus{}, err
	}

	client := clients.Client{
		FirstName:         fields.FirstName,
		LastName:          fields.LastName,
		Email:             fields.Email,
		Phone:             fields.Phone,
		DNI:               fields.DNI,
		MedicalConditions: fields.MedicalConditions,
	}
	if err := s.repo.CreateClient(ctx, &client); err != nil {
		return ClientWithStatus{}, storeErr(err, domainClients)
	}

	logger.FromContext(ctx).Info("[clients][create] client saved", "client_id", client.ID)

	if opts != nil && opts.ExpirationDate != nil {
		if sub := s.importSubscription(ctx, client.ID, *opts); sub != nil {
			client.Subscriptions = append(client.Subscriptions, *sub)
		}
	}
	s.invalidateStats(ctx)

	return toClientWithStatus(client, access.Resolve(s.today(), client.Subscriptions)), nil
}

func (s *Service) importSubscription(ctx context.Context, clientID uint, opts ImportOptions) *subscriptions.Subscription {
	log := logger.FromContext(ctx).With("client_id", clientID)

	if s.resolver == nil {
		log.Info("[import][skip] import disabled")
		return nil
	}

	candidates, err := s.repo.ListPlans(ctx)
	if err != nil {
		log.Error("[import][error] listing plans", "error", err)
		return nil
	}

	plan := s.resolver(candidates, opts.PlanName)
	if plan == nil {
		log.Warn("[import][skip] no plan available", "plan_hint", opts.PlanName)
		return nil
	}

	end := access.DateOnly(*opts.ExpirationDate)
	sub := subscriptions.Subscription{
		ClientID:      clientID,
		PlanID:        plan.ID,
		StartDate:     access.AddDays(end, -plan.DurationDays),
		EndDate:       end,
		PaymentStatus: subscriptions.PaymentImported,
		PricePaid:     0,
	}
	if err := s.repo.CreateSubscription(ctx, &sub); err != nil {
		log.Error("[import][error] saving subscription", "plan_id", plan.ID, "error", err)
		return nil
	}
	sub.Plan = plan

	log.Info("[import][ok] subscription imported",
		"plan", plan.Name,
		"end_date", access.FormatDate(end),
	)
	return &sub
}

// UpdateClient replaces the personal fields of a client. When expiration is
// given it overwrites the end date of the latest subscription; a client without
// subscriptions gets none.
func (s *Service) UpdateClient(ctx context.Context, id uint, fields ClientFields, expiration *time.Time) error {
	if id == 0 {
		return apperr.Validation(domainClients, "ID de cliente inválido")
	}
	fields = fields.trimmed()
	if err := s.checkClientFields(fields); err != nil {
		return err
	}

	log := logger.FromContext(ctx).With("client_id", id)

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		client, err := tx.FindClient(ctx, id)
		if isNotFound(err) {
			return apperr.NotFound(domainClients, "Cliente no encontrado")
		}
		if err != nil {
			return err
		}

		client.FirstName = fields.FirstName
		client.LastName = fields.LastName
		client.Email = fields.Email
		client.Phone = fields.Phone
		client.DNI = fields.DNI
		client.MedicalConditions = fields.MedicalConditions
		if err := tx.UpdateClient(ctx, client); err != nil {
			return err
		}

		if expiration == nil {
			return nil
		}

		latest, err := tx.LatestSubscription(ctx, id)
		if isNotFound(err) {
			log.Info("[clients][update] no subscription to edit, expiration ignored")
			return nil
		}
		if err != nil {
			return err
		}
		return tx.UpdateSubscriptionEnd(ctx, latest.ID, access.DateOnly(*expiration))
	})
	if err != nil {
		return storeErr(err, domainClients)
	}

	log.Info("[clients][update] client updated")
	if expiration != nil {
		s.invalidateStats(ctx)
	}
	return nil
}

// DeleteClient removes a client together with its visits and subscriptions.
func (s *Service) DeleteClient(ctx context.Context, id uint) error {
	if id == 0 {
		return apperr.Validation(domainClients, "ID de cliente inválido")
	}

	deleted, err := s.repo.DeleteClient(ctx, id)
	if err != nil {
		return storeErr(err, domainClients)
	}
	if !deleted {
		return apperr.NotFound(domainClients, "Cliente no encontrado")
	}

	logger.FromContext(ctx).Info("[clients][delete] client removed", "client_id", id)
	s.invalidateStats(ctx)
	return nil
}
