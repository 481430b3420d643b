package auth

import "github.com/playschool-a2z/management-api/internal/core/domain"

// Decision is the outcome of an access check.
type Decision int

const (
	// DecisionAllow grants access.
	DecisionAllow Decision = iota
	// DecisionDenyUnauthenticated rejects because no identity is present.
	DecisionDenyUnauthenticated
	// DecisionDenyForbidden rejects because the identity lacks every
	// required role.
	DecisionDenyForbidden
)

// Authorize decides whether principal may perform an operation guarded by
// required. It is a pure function with no I/O.
//
// An empty required set means the operation is public and always allowed.
// Otherwise a nil principal is rejected as unauthenticated, and a principal
// holding any one of the required roles is allowed (OR semantics, never AND).
func Authorize(principal *domain.Principal, required []domain.Role) Decision {
	if len(required) == 0 {
		return DecisionAllow
	}
	if principal == nil {
		return DecisionDenyUnauthenticated
	}
	for _, want := range required {
		for _, have := range principal.Roles {
			if have == want {
				return DecisionAllow
			}
		}
	}
	return DecisionDenyForbidden
}
