package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},

		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"prefixed string", Domain("clinica:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestKnownActions(t *testing.T) {
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	expectedResources := []Resource{
		ResourceUsuario, ResourceRol, ResourceAuthSession,
		ResourceMadre, ResourceParto, ResourceRecienNacido,
		ResourceDiagnostico, ResourceDefuncion, ResourceDocumento,
		ResourceSystem, ResourceAuditoria, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	expectedRoles := []Role{
		RoleSysAdminTI,
		RoleClinicaMatrona, RoleClinicaMedico, RoleClinicaAdministrativo,
	}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestRoleDisplayNames(t *testing.T) {
	for role := range KnownRoles {
		if name, ok := RoleDisplayNames[role]; !ok || name == "" {
			t.Errorf("Expected role %q to have a display name", role)
		}
	}
}

func TestRolNombreToRBACRole(t *testing.T) {
	for nombre, role := range RolNombreToRBACRole {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("rol.nombre %q maps to unknown role %q", nombre, role)
		}
		if RoleDisplayNames[role] != nombre {
			t.Errorf("display name for %q = %q, want %q", role, RoleDisplayNames[role], nombre)
		}
	}
}
