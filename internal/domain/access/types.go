package access

type Status string

const (
	StatusActive        Status = "ACTIVO"
	StatusInactive      Status = "INACTIVO"
	StatusNeverEnrolled Status = "NUNCA_INSCRITO"
)
