package membership

import (
	"context"
	"strings"

	"gym-frontdesk/internal/domain/access"
	"gym-frontdesk/internal/domain/clients"
)

// ClientWithStatus is one directory row: a client and its derived standing.
type ClientWithStatus struct {
	ID                 uint          `json:"id"`
	FirstName          string        `json:"first_name"`
	LastName           string        `json:"last_name"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone"`
	DNI                string        `json:"dni"`
	MedicalConditions  string        `json:"medical_conditions,omitempty"`
	LastPlan           *string       `json:"last_plan"`
	LastExpirationDate *string       `json:"last_expiration_date"`
	Status             access.Status `json:"status"`
}

// Search returns the clients whose first name, last name or dni contains q.
// A blank query matches nothing.
func (s *Service) Search(ctx context.Context, q string) ([]ClientWithStatus, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []ClientWithStatus{}, nil
	}

	found, err := s.repo.SearchClients(ctx, q)
	if err != nil {
		return nil, storeErr(err, domainClients)
	}
	return s.withStatus(found), nil
}

// ListAll returns every client once, sorted by first and last name.
func (s *Service) ListAll(ctx context.Context) ([]ClientWithStatus, error) {
	all, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, storeErr(err, domainClients)
	}
	return s.withStatus(all), nil
}

func (s *Service) withStatus(list []clients.Client) []ClientWithStatus {
	today := s.today()
	out := make([]ClientWithStatus, 0, len(list))
	for _, c := range list {
		out = append(out, toClientWithStatus(c, access.Resolve(today, c.Subscriptions)))
	}
	return out
}

func toClientWithStatus(c clients.Client, st access.Standing) ClientWithStatus {
	row := ClientWithStatus{
		ID:                c.ID,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Email:             c.Email,
		Phone:             c.Phone,
		DNI:               c.DNI,
		MedicalConditions: c.MedicalConditions,
		LastPlan:          st.LastPlan,
		Status:            st.Status,
	}
	if st.LastExpiration != nil {
		d := access.FormatDate(*st.LastExpiration)
		row.LastExpirationDate = &d
	}
	return row
}
