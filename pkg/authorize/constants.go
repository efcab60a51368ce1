package authorize

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power action: CRUD + list
	ActionManage Action = "manage"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {},
	ActionGrant:  {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / access
	ResourceUsuario     Resource = "usuario"
	ResourceRol         Resource = "rol"
	ResourceAuthSession Resource = "auth_session"

	// Clinical records
	ResourceMadre        Resource = "madre"
	ResourceParto        Resource = "parto"
	ResourceRecienNacido Resource = "recien_nacido"
	ResourceDiagnostico  Resource = "diagnostico"
	ResourceDefuncion    Resource = "defuncion"
	ResourceDocumento    Resource = "documento"

	// System / platform admin
	ResourceSystem    Resource = "system"
	ResourceAuditoria Resource = "auditoria"
	ResourceRBAC      Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUsuario: {}, ResourceRol: {}, ResourceAuthSession: {},
	ResourceMadre: {}, ResourceParto: {}, ResourceRecienNacido: {},
	ResourceDiagnostico: {}, ResourceDefuncion: {}, ResourceDocumento: {},
	ResourceSystem: {}, ResourceAuditoria: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RoleSysAdminTI Role = "role:sys:admin_ti"

	// Clinical roles (domain = sys; the hospital runs single-tenant)
	RoleClinicaMatrona        Role = "role:clinica:matrona"
	RoleClinicaMedico         Role = "role:clinica:medico"
	RoleClinicaAdministrativo Role = "role:clinica:administrativo"
)

var KnownRoles = map[Role]struct{}{
	RoleSysAdminTI:            {},
	RoleClinicaMatrona:        {},
	RoleClinicaMedico:         {},
	RoleClinicaAdministrativo: {},
}

// Spanish display names, matching the rol.nombre values stored in the DB.
var RoleDisplayNames = map[Role]string{
	RoleSysAdminTI:            "Administrador TI",
	RoleClinicaMatrona:        "Matrona",
	RoleClinicaMedico:         "Médico",
	RoleClinicaAdministrativo: "Administrativo",
}

// RolNombreToRBACRole maps rol.nombre values stored in the DB to Casbin roles.
var RolNombreToRBACRole = map[string]Role{
	"Administrador TI": RoleSysAdminTI,
	"Matrona":          RoleClinicaMatrona,
	"Médico":           RoleClinicaMedico,
	"Administrativo":   RoleClinicaAdministrativo,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

const (
	WildcardDomain Domain = "*"
)

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	return d == DomainSys || d == WildcardDomain
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
