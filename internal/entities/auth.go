package entities

import (
	"fmt"
	"strings"

	"github.com/Fivegen-LLC/coffee-fleet/internal/errs"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleFacility Role = "FACILITY"
)

func (r Role) String() string {
	return string(r)
}

// NormalizeRole maps role aliases ("role_admin", "TECHNICIAN") to known roles.
func NormalizeRole(input string) (role Role, err error) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	normalized = strings.TrimPrefix(normalized, "ROLE_")
	if normalized == "TECHNICIAN" {
		normalized = string(RoleFacility)
	}

	switch Role(normalized) {
	case RoleAdmin, RoleFacility:
		return Role(normalized), nil
	default:
		return role, fmt.Errorf("NormalizeRole: %q: %w", input, errs.ErrUnknownRole)
	}
}

// AuthorizationContext is resolved caller identity, scoped to a single request.
type AuthorizationContext struct {
	Subject            string
	Role               Role
	AssignedFacilityID *FacilityID
}

func NewAdminContext(subject string) AuthorizationContext {
	return AuthorizationContext{
		Subject: subject,
		Role:    RoleAdmin,
	}
}

func NewFacilityContext(subject string, assigned *FacilityID) AuthorizationContext {
	return AuthorizationContext{
		Subject:            subject,
		Role:               RoleFacility,
		AssignedFacilityID: assigned,
	}
}
