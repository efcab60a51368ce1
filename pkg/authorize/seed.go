package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
// Roles carry explicit capability sets; handlers never branch on role names.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	policies := []PermissionPolicy{
		// Administrador TI: full control, including RBAC and audit trail
		{RoleSysAdminTI, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Matrona: registers mothers, births, newborns and document references
		{RoleClinicaMatrona, DomainSys, ResourceMadre, ActionManage, EffectAllow},
		{RoleClinicaMatrona, DomainSys, ResourceParto, ActionManage, EffectAllow},
		{RoleClinicaMatrona, DomainSys, ResourceRecienNacido, ActionManage, EffectAllow},
		{RoleClinicaMatrona, DomainSys, ResourceDocumento, ActionManage, EffectAllow},
		{RoleClinicaMatrona, DomainSys, ResourceDiagnostico, ActionRead, EffectAllow},
		{RoleClinicaMatrona, DomainSys, ResourceDiagnostico, ActionList, EffectAllow},

		// Médico: everything the matrona does, plus diagnosis coding and deaths
		{RoleClinicaMedico, DomainSys, ResourceMadre, ActionManage, EffectAllow},
		{RoleClinicaMedico, DomainSys, ResourceParto, ActionManage, EffectAllow},
		{RoleClinicaMedico, DomainSys, ResourceRecienNacido, ActionManage, EffectAllow},
		{RoleClinicaMedico, DomainSys, ResourceDocumento, ActionManage, EffectAllow},
		{RoleClinicaMedico, DomainSys, ResourceDiagnostico, ActionManage, EffectAllow},
		{RoleClinicaMedico, DomainSys, ResourceDefuncion, ActionManage, EffectAllow},

		// Administrativo: read-only over the clinical record
		{RoleClinicaAdministrativo, DomainSys, ResourceMadre, ActionRead, EffectAllow},
		{RoleClinicaAdministrativo, DomainSys, ResourceMadre, ActionList, EffectAllow},
		{RoleClinicaAdministrativo, DomainSys, ResourceParto, ActionRead, EffectAllow},
		{RoleClinicaAdministrativo, DomainSys, ResourceParto, ActionList, EffectAllow},
		{RoleClinicaAdministrativo, DomainSys, ResourceRecienNacido, ActionRead, EffectAllow},
		{RoleClinicaAdministrativo, DomainSys, ResourceRecienNacido, ActionList, EffectAllow},
		{RoleClinicaAdministrativo, DomainSys, ResourceDiagnostico, ActionRead, EffectAllow},
		{RoleClinicaAdministrativo, DomainSys, ResourceDiagnostico, ActionList, EffectAllow},
		{RoleClinicaAdministrativo, DomainSys, ResourceDefuncion, ActionRead, EffectAllow},
		{RoleClinicaAdministrativo, DomainSys, ResourceDefuncion, ActionList, EffectAllow},
		{RoleClinicaAdministrativo, DomainSys, ResourceDocumento, ActionRead, EffectAllow},
		{RoleClinicaAdministrativo, DomainSys, ResourceDocumento, ActionList, EffectAllow},
	}

	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(policies))
	return nil
}

// AssignRoleByNombre binds the Casbin role matching the rol.nombre value
// to a user. Call this when creating a user or changing their role.
func AssignRoleByNombre(ctx context.Context, auth IAuthorization, userID, rolNombre string) error {
	role, ok := RolNombreToRBACRole[rolNombre]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainSys)
	return err
}

// RemoveRoleByNombre removes the Casbin role matching the rol.nombre value
// from a user.
func RemoveRoleByNombre(ctx context.Context, auth IAuthorization, userID, rolNombre string) error {
	role, ok := RolNombreToRBACRole[rolNombre]
	if !ok {
		return ErrInvalidArgs
	}

	_, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainSys)
	return err
}
