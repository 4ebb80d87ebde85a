package membership

import (
	"context"

	"gym-frontdesk/internal/apperr"
	"gym-frontdesk/internal/domain/access"
	"gym-frontdesk/internal/domain/visits"
	"gym-frontdesk/internal/logger"
)

const (
	MsgCheckInGranted = "¡Adentro! Visita registrada."
	MsgCheckInDenied  = "ACCESO DENEGADO: Cuota vencida"
)

// CheckInResult is the gate decision. A denial is a normal result, not an error.
type CheckInResult struct {
	Authorized bool
	Message    string
	VisitID    uint
}

// CheckIn admits the client when their latest subscription ends today or later
// and records exactly one visit. Otherwise nothing is written.
func (s *Service) CheckIn(ctx context.Context, clientID uint) (CheckInResult, error) {
	if clientID == 0 {
		return CheckInResult{}, apperr.Validation(domainVisits, "Debe seleccionar un cliente")
	}

	log := logger.FromContext(ctx)
	today := s.today()

	var result CheckInResult
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		latest, err := tx.LatestSubscription(ctx, clientID)
		if isNotFound(err) {
			result = CheckInResult{Message: MsgCheckInDenied}
			return nil
		}
		if err != nil {
			return err
		}
		if !access.IsCurrent(latest.EndDate, today) {
			result = CheckInResult{Message: MsgCheckInDenied}
			return nil
		}

		visit := visits.Visit{ClientID: clientID, VisitedAt: s.now().UTC()}
		if err := tx.CreateVisit(ctx, &visit); err != nil {
			return err
		}
		result = CheckInResult{Authorized: true, Message: MsgCheckInGranted, VisitID: visit.ID}
		return nil
	})
	if err != nil {
		return CheckInResult{}, storeErr(err, domainVisits)
	}

	if !result.Authorized {
		log.Info("[checkin][deny] quota expired", "client_id", clientID)
		return result, nil
	}

	log.Info("[checkin][ok] visit recorded", "client_id", clientID, "visit_id", result.VisitID)
	s.invalidateStats(ctx)
	return result, nil
}
