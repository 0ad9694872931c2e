package authz

import (
	"context"

	"github.com/workline-hq/attendance-backend-go/internal/domain/user"
)

// Actor is the authenticated caller as carried by the access token. An
// actor is identified in two spaces at once: the account id issued by the
// auth system and the employee-record id from the directory.
type Actor struct {
	UserID     string
	EmployeeID string // empty when no employee record is linked yet
	Role       user.Role
}

// Resolver decides read/write eligibility for a target employee and
// bridges the two identifier spaces. It is the single place authorization
// is resolved; call sites never compare identifiers themselves.
type Resolver interface {
	// ActorFromContext extracts the authenticated actor from the request
	// context.
	ActorFromContext(ctx context.Context) (Actor, error)

	// ResolveEmployee returns the canonical employee-record id for
	// targetID, which callers may supply as either an employee id or an
	// account id. HR actors are always granted; other actors are granted
	// only when the target resolves to their own employee record, and a
	// mismatch is ErrAccessDenied, never a silently filtered result.
	ResolveEmployee(ctx context.Context, actor Actor, targetID string) (string, error)
}
