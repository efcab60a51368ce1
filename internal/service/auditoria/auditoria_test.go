package auditoria

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	"github.com/saludmaterna/maternidad_backend/internal/repo/enttest"
	"github.com/saludmaterna/maternidad_backend/pkg/reqctx"
)

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return New(client, nil), client
}

func TestRecord(t *testing.T) {
	svc, client := newTestService(t)
	ctx := reqctx.WithRequestMeta(context.Background(), &reqctx.RequestMeta{
		ClientIP: "10.0.0.7",
	})

	registroID := uuid.New()
	svc.Record(ctx, Entry{
		Accion:        "CREAR_MADRE",
		TablaAfectada: "madres",
		RegistroID:    &registroID,
		Detalles:      map[string]any{"ficha": "FC-2024-001"},
	})

	rows, err := client.LogAuditoria.Query().All(ctx)
	if err != nil {
		t.Fatalf("query logs: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.Accion != "CREAR_MADRE" {
		t.Errorf("Accion = %q", row.Accion)
	}
	if row.TablaAfectada != "madres" {
		t.Errorf("TablaAfectada = %q", row.TablaAfectada)
	}
	if row.IPUsuario != "10.0.0.7" {
		t.Errorf("IPUsuario = %q, want client ip from context", row.IPUsuario)
	}
	if row.Detalles["ficha"] != "FC-2024-001" {
		t.Errorf("Detalles = %v", row.Detalles)
	}
}

func createUsuario(t *testing.T, client *repo.Client, n int) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	rol, err := client.Rol.Create().
		SetNombre(fmt.Sprintf("Rol %d", n)).
		Save(ctx)
	if err != nil {
		t.Fatalf("create rol: %v", err)
	}
	u, err := client.Usuario.Create().
		SetRut(fmt.Sprintf("1111111%d-1", n)).
		SetNombreCompleto(fmt.Sprintf("Usuario %d", n)).
		SetEmail(fmt.Sprintf("usuario%d@hospital.cl", n)).
		SetUsername(fmt.Sprintf("usuario%d", n)).
		SetPasswordHash("x").
		SetRolID(rol.ID).
		Save(ctx)
	if err != nil {
		t.Fatalf("create usuario: %v", err)
	}
	return u.ID
}

func TestListFilters(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	actorA := createUsuario(t, client, 1)
	actorB := createUsuario(t, client, 2)
	svc.Record(ctx, Entry{UsuarioID: &actorA, Accion: "CREAR_MADRE", TablaAfectada: "madres"})
	svc.Record(ctx, Entry{UsuarioID: &actorA, Accion: "CREAR_PARTO", TablaAfectada: "partos"})
	svc.Record(ctx, Entry{UsuarioID: &actorB, Accion: "CREAR_PARTO", TablaAfectada: "partos"})

	res, err := svc.List(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 3 {
		t.Errorf("Total = %d, want 3", res.Total)
	}

	res, err = svc.List(ctx, ListRequest{UsuarioID: &actorA})
	if err != nil {
		t.Fatalf("List(usuario) error = %v", err)
	}
	if res.Total != 2 {
		t.Errorf("Total filtered by usuario = %d, want 2", res.Total)
	}

	tabla := "partos"
	res, err = svc.List(ctx, ListRequest{UsuarioID: &actorA, TablaAfectada: &tabla})
	if err != nil {
		t.Fatalf("List(usuario+tabla) error = %v", err)
	}
	if res.Total != 1 {
		t.Errorf("Total filtered by usuario y tabla = %d, want 1", res.Total)
	}
	if len(res.Data) != 1 || res.Data[0].Accion != "CREAR_PARTO" {
		t.Errorf("Data = %v, want the parto entry", res.Data)
	}
}
