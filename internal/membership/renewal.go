package membership

import (
	"context"

	"gym-frontdesk/internal/apperr"
	"gym-frontdesk/internal/domain/access"
	"gym-frontdesk/internal/domain/subscriptions"
	"gym-frontdesk/internal/logger"
)

// Renew sells plan planID to the client starting today. Existing subscriptions
// are left untouched; the new row simply extends the history.
func (s *Service) Renew(ctx context.Context, clientID, planID uint) (*subscriptions.Subscription, error) {
	if clientID == 0 || planID == 0 {
		return nil, apperr.Validation(domainSubscriptions, "Debe seleccionar un cliente y un plan")
	}

	today := s.today()

	var sub subscriptions.Subscription
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		plan, err := tx.FindPlan(ctx, planID)
		if isNotFound(err) {
			return apperr.NotFound(domainPlans, "Plan no encontrado")
		}
		if err != nil {
			return err
		}

		if _, err := tx.FindClient(ctx, clientID); isNotFound(err) {
			return apperr.NotFound(domainClients, "Cliente no encontrado")
		} else if err != nil {
			return err
		}

		sub = subscriptions.Subscription{
			ClientID:      clientID,
			PlanID:        plan.ID,
			StartDate:     today,
			EndDate:       access.AddDays(today, plan.DurationDays),
			PaymentStatus: subscriptions.PaymentPaid,
			PricePaid:     plan.Price,
		}
		if err := tx.CreateSubscription(ctx, &sub); err != nil {
			return err
		}
		sub.Plan = plan
		return nil
	})
	if err != nil {
		return nil, storeErr(err, domainSubscriptions)
	}

	logger.FromContext(ctx).Info("[renewal][ok] subscription created",
		"client_id", clientID,
		"plan_id", planID,
		"end_date", access.FormatDate(sub.EndDate),
	)
	s.invalidateStats(ctx)
	return &sub, nil
}
