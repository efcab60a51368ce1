package authorize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// createTestEnforcer creates an in-memory Casbin enforcer for testing
func createTestEnforcer(t *testing.T) *casbin.DistributedEnforcer {
	t.Helper()

	tmpDir := t.TempDir()

	modelPath := filepath.Join(tmpDir, "model.conf")
	modelContent := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _
g2 = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = (g(r.sub, p.sub, r.dom) || g2(r.sub, p.sub)) && (p.dom == "*" || p.dom == r.dom) && (p.obj == "*" || keyMatch2(r.obj, p.obj)) && (p.act == "*" || keyMatch(r.act, p.act))
`
	if err := os.WriteFile(modelPath, []byte(modelContent), 0644); err != nil {
		t.Fatalf("failed to write model file: %v", err)
	}

	policyPath := filepath.Join(tmpDir, "policy.csv")
	if err := os.WriteFile(policyPath, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}

	a := fileadapter.NewAdapter(policyPath)

	e, err := casbin.NewDistributedEnforcer(modelPath, a)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}

	e.EnableAutoSave(false)
	e.EnableEnforce(true)

	return e
}

func TestNewAuthorization(t *testing.T) {
	t.Run("returns error for nil enforcer", func(t *testing.T) {
		_, err := NewAuthorization(nil)
		if err == nil {
			t.Error("Expected error for nil enforcer")
		}
	})

	t.Run("succeeds with valid enforcer", func(t *testing.T) {
		e := createTestEnforcer(t)
		auth, err := NewAuthorization(e)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if auth == nil {
			t.Error("Expected non-nil authorization")
		}
	})
}

func TestEnforce(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "user-123"

	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleClinicaMatrona, DomainSys)
	if err != nil {
		t.Fatalf("Failed to add role: %v", err)
	}

	_, err = auth.AddPermission(ctx, RoleClinicaMatrona, DomainSys, ResourceMadre, ActionManage, EffectAllow)
	if err != nil {
		t.Fatalf("Failed to add permission: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		domain   Domain
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{
			name:     "allowed when permission exists",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceMadre,
			action:   ActionManage,
			want:     true,
			wantErr:  false,
		},
		{
			name:     "denied when no permission",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceDefuncion,
			action:   ActionCreate,
			want:     false,
			wantErr:  false,
		},
		{
			name:     "error for empty subject",
			subject:  "",
			domain:   DomainSys,
			resource: ResourceMadre,
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for invalid domain",
			subject:  GroupSubject(userID),
			domain:   Domain("invalid"),
			resource: ResourceMadre,
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown resource",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: Resource("unknown"),
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown action",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceMadre,
			action:   Action("unknown"),
			want:     false,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.domain, tt.resource, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Enforce() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "user-456"

	auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleClinicaMedico, DomainSys)
	auth.AddPermission(ctx, RoleClinicaMedico, DomainSys, ResourceDefuncion, ActionManage, EffectAllow)

	t.Run("returns nil when allowed", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(userID), DomainSys, ResourceDefuncion, ActionManage)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("returns ErrForbidden when denied", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(userID), DomainSys, ResourceAuditoria, ActionDelete)
		if err != ErrForbidden {
			t.Errorf("Expected ErrForbidden, got %v", err)
		}
	})
}

func TestAdminTIBypass(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	adminID := "admin-ti-id"

	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(adminID), RoleSysAdminTI, DomainSys)
	if err != nil {
		t.Fatalf("Failed to add TI admin role: %v", err)
	}

	// TI admin should be allowed to do anything without explicit policies
	allowed, err := auth.Enforce(ctx, GroupSubject(adminID), DomainSys, ResourceUsuario, ActionDelete)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if !allowed {
		t.Error("Expected TI admin to be allowed")
	}
}

func TestRoleManagement(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "user-789"

	t.Run("add and get roles", func(t *testing.T) {
		added, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleClinicaAdministrativo, DomainSys)
		if err != nil {
			t.Errorf("Failed to add role: %v", err)
		}
		if !added {
			t.Error("Expected role to be added")
		}

		roles, err := auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), DomainSys)
		if err != nil {
			t.Errorf("Failed to get roles: %v", err)
		}
		if len(roles) != 1 {
			t.Errorf("Expected 1 role, got %d", len(roles))
		}
		if roles[0] != RoleClinicaAdministrativo {
			t.Errorf("Expected role %q, got %q", RoleClinicaAdministrativo, roles[0])
		}
	})

	t.Run("remove role", func(t *testing.T) {
		removed, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(userID), RoleClinicaAdministrativo, DomainSys)
		if err != nil {
			t.Errorf("Failed to remove role: %v", err)
		}
		if !removed {
			t.Error("Expected role to be removed")
		}

		roles, _ := auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), DomainSys)
		if len(roles) != 0 {
			t.Errorf("Expected 0 roles after removal, got %d", len(roles))
		}
	})

	t.Run("error for invalid role", func(t *testing.T) {
		_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), Role("invalid-role"), DomainSys)
		if err == nil {
			t.Error("Expected error for invalid role")
		}
	})
}

func TestPermissionManagement(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	t.Run("add and remove permission", func(t *testing.T) {
		added, err := auth.AddPermission(ctx, RoleClinicaAdministrativo, DomainSys, ResourceParto, ActionRead, EffectAllow)
		if err != nil {
			t.Errorf("Failed to add permission: %v", err)
		}
		if !added {
			t.Error("Expected permission to be added")
		}

		removed, err := auth.RemovePermission(ctx, RoleClinicaAdministrativo, DomainSys, ResourceParto, ActionRead, EffectAllow)
		if err != nil {
			t.Errorf("Failed to remove permission: %v", err)
		}
		if !removed {
			t.Error("Expected permission to be removed")
		}
	})

	t.Run("error for invalid effect", func(t *testing.T) {
		_, err := auth.AddPermission(ctx, RoleClinicaMedico, DomainSys, ResourceParto, ActionRead, PolicyEffect("invalid"))
		if err == nil {
			t.Error("Expected error for invalid effect")
		}
	})
}

func TestSeedDefaultPolicies(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	if err := SeedDefaultPolicies(ctx, auth); err != nil {
		t.Fatalf("SeedDefaultPolicies() error = %v", err)
	}

	matronaID := "matrona-1"
	auth.AddRoleForUserInDomain(ctx, GroupSubject(matronaID), RoleClinicaMatrona, DomainSys)

	// Matrona can manage births but cannot record deaths
	if err := auth.MustEnforce(ctx, GroupSubject(matronaID), DomainSys, ResourceParto, ActionManage); err != nil {
		t.Errorf("matrona should manage partos: %v", err)
	}
	if err := auth.MustEnforce(ctx, GroupSubject(matronaID), DomainSys, ResourceDefuncion, ActionCreate); err != ErrForbidden {
		t.Errorf("matrona should not create defunciones, got %v", err)
	}

	medicoID := "medico-1"
	auth.AddRoleForUserInDomain(ctx, GroupSubject(medicoID), RoleClinicaMedico, DomainSys)

	if err := auth.MustEnforce(ctx, GroupSubject(medicoID), DomainSys, ResourceDefuncion, ActionManage); err != nil {
		t.Errorf("medico should manage defunciones: %v", err)
	}

	adminID := "administrativo-1"
	auth.AddRoleForUserInDomain(ctx, GroupSubject(adminID), RoleClinicaAdministrativo, DomainSys)

	if err := auth.MustEnforce(ctx, GroupSubject(adminID), DomainSys, ResourceMadre, ActionRead); err != nil {
		t.Errorf("administrativo should read madres: %v", err)
	}
	if err := auth.MustEnforce(ctx, GroupSubject(adminID), DomainSys, ResourceMadre, ActionUpdate); err != ErrForbidden {
		t.Errorf("administrativo should not update madres, got %v", err)
	}
}
