package model

import "github.com/google/uuid"

// Principal is the authenticated driver behind a request.
type Principal struct {
	DriverID uuid.UUID
	Username string
	IsStaff  bool
}

func (p Principal) IsAdmin() bool {
	return p.IsStaff
}
