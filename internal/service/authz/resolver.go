package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workline-hq/attendance-backend-go/internal/domain/authz"
	"github.com/workline-hq/attendance-backend-go/internal/domain/employee"
	"github.com/workline-hq/attendance-backend-go/internal/domain/user"
)

type resolverImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewResolver(employeeRepo employee.EmployeeRepository) authz.Resolver {
	return &resolverImpl{employeeRepo: employeeRepo}
}

// ActorFromContext implements authz.Resolver.
func (r *resolverImpl) ActorFromContext(ctx context.Context) (authz.Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return authz.Actor{}, fmt.Errorf("failed to extract claims from context: %w", authz.ErrNoActor)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return authz.Actor{}, authz.ErrNoActor
	}

	actor := authz.Actor{UserID: userID}

	if employeeID, ok := claims["employee_id"].(string); ok {
		actor.EmployeeID = employeeID
	}
	if role, ok := claims["role"].(string); ok {
		actor.Role = user.Role(role)
	}

	return actor, nil
}

// ResolveEmployee implements authz.Resolver. The target may arrive in
// either identifier space, so before denying a non-HR actor we resolve
// their employee record from the account identity and compare that too.
func (r *resolverImpl) ResolveEmployee(ctx context.Context, actor authz.Actor, targetID string) (string, error) {
	if actor.Role.IsHR() {
		return r.canonicalEmployeeID(ctx, targetID)
	}

	if actor.EmployeeID != "" && targetID == actor.EmployeeID {
		return actor.EmployeeID, nil
	}

	own, err := r.employeeRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return "", authz.ErrAccessDenied
		}
		return "", fmt.Errorf("failed to resolve actor employee: %w", err)
	}

	if targetID == own.ID || targetID == actor.UserID {
		return own.ID, nil
	}

	return "", authz.ErrAccessDenied
}

// canonicalEmployeeID maps a target given in either identifier space to
// the employee-record id.
func (r *resolverImpl) canonicalEmployeeID(ctx context.Context, targetID string) (string, error) {
	emp, err := r.employeeRepo.GetByID(ctx, targetID)
	if err == nil {
		return emp.ID, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return "", fmt.Errorf("failed to resolve target employee: %w", err)
	}

	emp, err = r.employeeRepo.GetByUserID(ctx, targetID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return "", employee.ErrEmployeeNotFound
		}
		return "", fmt.Errorf("failed to resolve target employee by user ID: %w", err)
	}
	return emp.ID, nil
}
