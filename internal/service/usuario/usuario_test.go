package usuario

import (
	"context"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	"github.com/saludmaterna/maternidad_backend/internal/repo/enttest"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := newTestClient(t)
	svc := New(client, nil, nil, nil, nil, 12, "")
	return svc, client
}

func createRol(t *testing.T, svc Service, nombre string) *repo.Rol {
	t.Helper()
	rol, err := svc.CreateRol(context.Background(), CreateRolRequest{Nombre: nombre})
	if err != nil {
		t.Fatalf("CreateRol(%q) error = %v", nombre, err)
	}
	return rol
}

func TestCreateRolDuplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	createRol(t, svc, "Matrona")

	_, err := svc.CreateRol(ctx, CreateRolRequest{Nombre: "Matrona"})
	if !errors.Is(err, ErrRolRegistrado) {
		t.Fatalf("CreateRol() error = %v, want ErrRolRegistrado", err)
	}
}

func TestCreateUsuario(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rol := createRol(t, svc, "Matrona")

	u, err := svc.Create(ctx, CreateUsuarioRequest{
		Rut:            "12.345.678-5",
		NombreCompleto: "María José Rojas",
		Email:          "MJROJAS@hospital.cl",
		Username:       "mjrojas",
		RolID:          rol.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if u.Rut != "12345678-5" {
		t.Errorf("Rut = %q, want normalized %q", u.Rut, "12345678-5")
	}
	if u.Email != "mjrojas@hospital.cl" {
		t.Errorf("Email = %q, want lowercased", u.Email)
	}
	if !u.Activo {
		t.Error("new usuario should be activo")
	}
	if u.PasswordHash == "" {
		t.Error("PasswordHash should be set")
	}
}

func TestCreateUsuarioInvalidRut(t *testing.T) {
	svc, _ := newTestService(t)
	rol := createRol(t, svc, "Matrona")

	tests := []string{"", "abc", "1-1", "12345678-99"}
	for _, rut := range tests {
		_, err := svc.Create(context.Background(), CreateUsuarioRequest{
			Rut:            rut,
			NombreCompleto: "X",
			Email:          "x@h.cl",
			Username:       "x",
			RolID:          rol.ID,
		})
		if !errors.Is(err, ErrRutInvalido) {
			t.Errorf("Create(rut=%q) error = %v, want ErrRutInvalido", rut, err)
		}
	}
}

func TestCreateUsuarioUniqueness(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	rol := createRol(t, svc, "Matrona")

	base := CreateUsuarioRequest{
		Rut:            "12345678-5",
		NombreCompleto: "María José Rojas",
		Email:          "mjrojas@hospital.cl",
		Username:       "mjrojas",
		RolID:          rol.ID,
	}
	if _, err := svc.Create(ctx, base); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(r CreateUsuarioRequest) CreateUsuarioRequest
		wantErr error
	}{
		{
			name: "duplicate rut",
			mutate: func(r CreateUsuarioRequest) CreateUsuarioRequest {
				r.Email = "otro@hospital.cl"
				r.Username = "otro"
				return r
			},
			wantErr: ErrRutRegistrado,
		},
		{
			name: "duplicate email",
			mutate: func(r CreateUsuarioRequest) CreateUsuarioRequest {
				r.Rut = "7775577-2"
				r.Username = "otro"
				return r
			},
			wantErr: ErrEmailRegistrado,
		},
		{
			name: "duplicate username",
			mutate: func(r CreateUsuarioRequest) CreateUsuarioRequest {
				r.Rut = "7775577-2"
				r.Email = "otro@hospital.cl"
				return r
			},
			wantErr: ErrUsernameEnUso,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.mutate(base))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateUsuario(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	matrona := createRol(t, svc, "Matrona")
	medico := createRol(t, svc, "Médico")

	u, err := svc.Create(ctx, CreateUsuarioRequest{
		Rut:            "12345678-5",
		NombreCompleto: "María José Rojas",
		Email:          "mjrojas@hospital.cl",
		Username:       "mjrojas",
		RolID:          matrona.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	nuevoNombre := "María J. Rojas Soto"
	updated, err := svc.Update(ctx, u.ID, UpdateUsuarioRequest{
		NombreCompleto: &nuevoNombre,
		RolID:          &medico.ID,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.NombreCompleto != nuevoNombre {
		t.Errorf("NombreCompleto = %q, want %q", updated.NombreCompleto, nuevoNombre)
	}
	if updated.RolID != medico.ID {
		t.Errorf("RolID = %v, want %v", updated.RolID, medico.ID)
	}
}

func TestDeactivateUsuario(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	rol := createRol(t, svc, "Administrativo")
	u, err := svc.Create(ctx, CreateUsuarioRequest{
		Rut:            "12345678-5",
		NombreCompleto: "Pedro Soto",
		Email:          "psoto@hospital.cl",
		Username:       "psoto",
		RolID:          rol.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Deactivate(ctx, u.ID); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}

	got, err := client.Usuario.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Activo {
		t.Error("usuario should be inactive after Deactivate")
	}
}

func TestNormalizeRut(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.345.678-5", "12345678-5"},
		{"12345678-k", "12345678-K"},
		{" 7.775.577-2 ", "7775577-2"},
	}
	for _, tt := range tests {
		if got := NormalizeRut(tt.in); got != tt.want {
			t.Errorf("NormalizeRut(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidRut(t *testing.T) {
	tests := []struct {
		rut  string
		want bool
	}{
		{"12345678-5", true},
		{"7775577-2", true},
		{"12345678-9", true},
		{"12345678-K", true},
		{"not-a-rut", false},
		{"12345678-99", false},
		{"123456-7", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidRut(tt.rut); got != tt.want {
			t.Errorf("ValidRut(%q) = %v, want %v", tt.rut, got, tt.want)
		}
	}
}
