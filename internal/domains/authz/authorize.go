package authz

import (
	"github.com/Fivegen-LLC/coffee-fleet/internal/entities"
)

type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Reason explains deny decision, ReasonNone for allowed requests.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonFacilityMismatch
	ReasonNoFacilityAssignment
	ReasonUnknownRole
	ReasonAdminOnly
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonFacilityMismatch:
		return "facility_mismatch"
	case ReasonNoFacilityAssignment:
		return "no_facility_assignment"
	case ReasonUnknownRole:
		return "unknown_role"
	case ReasonAdminOnly:
		return "admin_only"
	default:
		return "unknown"
	}
}

type Result struct {
	Decision Decision
	Reason   Reason
}

func (r Result) Allowed() bool {
	return r.Decision == Allow
}

func allow() Result {
	return Result{Decision: Allow, Reason: ReasonNone}
}

func deny(reason Reason) Result {
	return Result{Decision: Deny, Reason: reason}
}

// Authorize decides whether caller may read data of requested facility.
// Admins read every facility, facility users only their assigned one.
func Authorize(actx entities.AuthorizationContext, requested entities.FacilityID) Result {
	switch actx.Role {
	case entities.RoleAdmin:
		return allow()
	case entities.RoleFacility:
		if actx.AssignedFacilityID == nil {
			return deny(ReasonNoFacilityAssignment)
		}

		if *actx.AssignedFacilityID != requested {
			return deny(ReasonFacilityMismatch)
		}

		return allow()
	default:
		return deny(ReasonUnknownRole)
	}
}

// AuthorizeFleet decides whether caller may read fleet wide data.
func AuthorizeFleet(actx entities.AuthorizationContext) Result {
	switch actx.Role {
	case entities.RoleAdmin:
		return allow()
	case entities.RoleFacility:
		return deny(ReasonAdminOnly)
	default:
		return deny(ReasonUnknownRole)
	}
}
