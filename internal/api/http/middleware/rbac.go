package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/saludmaterna/maternidad_backend/pkg/authorize"
	pasetotoken "github.com/saludmaterna/maternidad_backend/pkg/paseto"
)

// RequirePermission checks that the authenticated user holds the given
// permission in the sys domain. A role granted "manage" on a resource covers
// every concrete action on it, so the check falls back to manage when the
// specific action is not granted directly.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())

		allowed, err := auth.Enforce(c.Context(), subject, authorize.DomainSys, resource, action)
		if err != nil {
			if errors.Is(err, authorize.ErrInvalidArgs) {
				return fiber.ErrForbidden
			}
			return err
		}
		if !allowed && action != authorize.ActionManage {
			allowed, err = auth.Enforce(c.Context(), subject, authorize.DomainSys, resource, authorize.ActionManage)
			if err != nil {
				return err
			}
		}
		if !allowed {
			return fiber.ErrForbidden
		}

		return c.Next()
	}
}
