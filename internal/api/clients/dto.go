package clients

import "gym-frontdesk/internal/membership"

type clientRequest struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	DNI               string `json:"dni"`
	MedicalConditions string `json:"medical_conditions"`

	// Import or edit of the paid-until date, YYYY-MM-DD.
	ExpirationDate string `json:"expiration_date"`
	// Plan name carried over from an older system; only used on create.
	PlanName string `json:"plan_name"`
}

func (r clientRequest) fields() membership.ClientFields {
	return membership.ClientFields{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Email:             r.Email,
		Phone:             r.Phone,
		DNI:               r.DNI,
		MedicalConditions: r.MedicalConditions,
	}
}
