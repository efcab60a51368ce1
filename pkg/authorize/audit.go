package authorize

import (
	"context"
	"log/slog"
	"time"

	casbin "github.com/casbin/casbin/v2"
)

// AuditedAuthorization decorates an IAuthorization so every access decision
// and policy mutation leaves a structured log line. Clinical data access is
// subject to review, so denials also log the roles the subject held at the
// time of the decision.
type AuditedAuthorization struct {
	inner  IAuthorization
	logger *slog.Logger
}

func NewAuditedAuthorization(inner IAuthorization, logger *slog.Logger) IAuthorization {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditedAuthorization{inner: inner, logger: logger}
}

func (a *AuditedAuthorization) Enforce(ctx context.Context, subject GroupSubject, domain Domain, object Resource, action Action) (bool, error) {
	start := time.Now()
	allowed, err := a.inner.Enforce(ctx, subject, domain, object, action)

	attrs := []any{
		"subject", string(subject),
		"resource", string(object),
		"action", string(action),
		"allowed", allowed,
		"duration_ms", time.Since(start).Milliseconds(),
	}

	switch {
	case err != nil:
		a.logger.Error("authz_decision", append(attrs, "error", err.Error())...)
	case allowed:
		a.logger.Info("authz_decision", attrs...)
	default:
		if roles, rerr := a.inner.GetRolesForUserInDomain(ctx, subject, domain); rerr == nil {
			attrs = append(attrs, "roles", roleNames(roles))
		}
		a.logger.Warn("authz_decision", attrs...)
	}

	return allowed, err
}

func (a *AuditedAuthorization) MustEnforce(ctx context.Context, subject GroupSubject, domain Domain, object Resource, action Action) error {
	ok, err := a.Enforce(ctx, subject, domain, object, action)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

func (a *AuditedAuthorization) AddRoleForUserInDomain(ctx context.Context, subject GroupSubject, role Role, domain Domain) (bool, error) {
	changed, err := a.inner.AddRoleForUserInDomain(ctx, subject, role, domain)
	a.logMutation("authz_role_change", err,
		"operation", "add_role",
		"subject", string(subject),
		"role", string(role),
		"changed", changed,
	)
	return changed, err
}

func (a *AuditedAuthorization) RemoveRoleForUserInDomain(ctx context.Context, subject GroupSubject, role Role, domain Domain) (bool, error) {
	changed, err := a.inner.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	a.logMutation("authz_role_change", err,
		"operation", "remove_role",
		"subject", string(subject),
		"role", string(role),
		"changed", changed,
	)
	return changed, err
}

func (a *AuditedAuthorization) GetRolesForUserInDomain(ctx context.Context, subject GroupSubject, domain Domain) ([]Role, error) {
	return a.inner.GetRolesForUserInDomain(ctx, subject, domain)
}

func (a *AuditedAuthorization) AddPermission(ctx context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error) {
	changed, err := a.inner.AddPermission(ctx, role, domain, object, action, effect)
	a.logMutation("authz_permission_change", err,
		"operation", "add_permission",
		"role", string(role),
		"resource", string(object),
		"action", string(action),
		"effect", string(effect),
		"changed", changed,
	)
	return changed, err
}

func (a *AuditedAuthorization) RemovePermission(ctx context.Context, role Role, domain Domain, object Resource, action Action, effect PolicyEffect) (bool, error) {
	changed, err := a.inner.RemovePermission(ctx, role, domain, object, action, effect)
	a.logMutation("authz_permission_change", err,
		"operation", "remove_permission",
		"role", string(role),
		"resource", string(object),
		"action", string(action),
		"effect", string(effect),
		"changed", changed,
	)
	return changed, err
}

func (a *AuditedAuthorization) Raw() *casbin.DistributedEnforcer {
	return a.inner.Raw()
}

func (a *AuditedAuthorization) logMutation(msg string, err error, attrs ...any) {
	if err != nil {
		a.logger.Error(msg, append(attrs, "error", err.Error())...)
		return
	}
	a.logger.Info(msg, attrs...)
}

func roleNames(roles []Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names
}
