package diagnostico

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	"github.com/saludmaterna/maternidad_backend/internal/repo/enttest"
	"github.com/saludmaterna/maternidad_backend/pkg/crypto"
)

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return New(client, nil), client
}

func createParto(t *testing.T, client *repo.Client) *repo.Parto {
	t.Helper()
	ctx := context.Background()
	m, err := client.Madre.Create().
		SetFichaClinicaID("FC-2024-001").
		SetRutHash(crypto.Hash("12345678-5")).
		SetRutEncrypted("ct-rut").
		SetNombreHash(crypto.Hash("Carolina Pérez Lagos")).
		SetNombreEncrypted("ct-nombre").
		SetFechaNacimiento(time.Date(1992, 3, 14, 0, 0, 0, 0, time.UTC)).
		Save(ctx)
	if err != nil {
		t.Fatalf("create madre: %v", err)
	}
	p, err := client.Parto.Create().
		SetMadreID(m.ID).
		SetFechaParto(time.Now()).
		SetTipoParto("Eutócico").
		Save(ctx)
	if err != nil {
		t.Fatalf("create parto: %v", err)
	}
	return p
}

func TestCreateDiagnostico(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateRequest{Codigo: " o80.0 ", Descripcion: " Parto único espontáneo "})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if d.Codigo != "O80.0" {
		t.Errorf("Codigo = %q, want uppercased O80.0", d.Codigo)
	}
	if d.Descripcion != "Parto único espontáneo" {
		t.Errorf("Descripcion = %q", d.Descripcion)
	}

	// Same code in a different case collides.
	if _, err := svc.Create(ctx, CreateRequest{Codigo: "O80.0", Descripcion: "x"}); !errors.Is(err, ErrCodigoRegistrado) {
		t.Errorf("Create(duplicate) error = %v, want ErrCodigoRegistrado", err)
	}

	got, err := svc.GetByCodigo(ctx, "o80.0")
	if err != nil {
		t.Fatalf("GetByCodigo() error = %v", err)
	}
	if got.ID != d.ID {
		t.Errorf("GetByCodigo() ID = %v, want %v", got.ID, d.ID)
	}
}

func TestSearchDiagnosticos(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seed := []CreateRequest{
		{Codigo: "O80.0", Descripcion: "Parto único espontáneo, presentación cefálica"},
		{Codigo: "O82.1", Descripcion: "Parto por cesárea de emergencia"},
		{Codigo: "P07.1", Descripcion: "Otro peso bajo al nacer"},
	}
	for _, req := range seed {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("seed Create(%s) error = %v", req.Codigo, err)
		}
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"prefijo de codigo", "o8", 2},
		{"codigo exacto", "P07.1", 1},
		{"texto en descripcion", "cesárea", 1},
		{"sin resultados", "Z99", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(ctx, SearchRequest{Query: tt.query})
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Search(%q) = %d results, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestLinkUnlink(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createParto(t, client)

	d, err := svc.Create(ctx, CreateRequest{Codigo: "O82.1", Descripcion: "Parto por cesárea de emergencia"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	link, err := svc.Link(ctx, p.ID, d.ID)
	if err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	if link.PartoID != p.ID || link.DiagnosticoID != d.ID {
		t.Errorf("link = (%v, %v), want (%v, %v)", link.PartoID, link.DiagnosticoID, p.ID, d.ID)
	}

	if _, err := svc.Link(ctx, p.ID, d.ID); !errors.Is(err, ErrYaVinculado) {
		t.Errorf("Link(again) error = %v, want ErrYaVinculado", err)
	}

	if _, err := svc.Link(ctx, uuid.New(), d.ID); !errors.Is(err, ErrPartoNotFound) {
		t.Errorf("Link(unknown parto) error = %v, want ErrPartoNotFound", err)
	}
	if _, err := svc.Link(ctx, p.ID, uuid.New()); !errors.Is(err, ErrDiagnosticoNotFound) {
		t.Errorf("Link(unknown diagnostico) error = %v, want ErrDiagnosticoNotFound", err)
	}

	linked, err := svc.ListByParto(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListByParto() error = %v", err)
	}
	if len(linked) != 1 || linked[0].ID != d.ID {
		t.Errorf("ListByParto() = %v, want the linked diagnostico", linked)
	}

	if err := svc.Unlink(ctx, p.ID, d.ID); err != nil {
		t.Fatalf("Unlink() error = %v", err)
	}
	if err := svc.Unlink(ctx, p.ID, d.ID); !errors.Is(err, ErrVinculoNotFound) {
		t.Errorf("Unlink(again) error = %v, want ErrVinculoNotFound", err)
	}

	linked, err = svc.ListByParto(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListByParto() error = %v", err)
	}
	if len(linked) != 0 {
		t.Errorf("ListByParto() after unlink = %d results, want 0", len(linked))
	}
}
