package defuncion

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

type fixtures struct {
	madre *repo.Madre
	rn    *repo.RecienNacido
	causa *repo.DiagnosticoCIE10
}

func newTestService(t *testing.T) (Service, *repo.Client, fixtures) {
	t.Helper()
	ctx := context.Background()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

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
	rn, err := client.RecienNacido.Create().
		SetPartoID(p.ID).
		SetEstadoAlNacer("Vivo").
		SetSexo("Masculino").
		SetPesoGramos(3400).
		SetTallaCm(50).
		SetApgar1Min(7).
		SetApgar5Min(9).
		Save(ctx)
	if err != nil {
		t.Fatalf("create recien nacido: %v", err)
	}
	causa, err := client.DiagnosticoCIE10.Create().
		SetCodigo("O95").
		SetDescripcion("Muerte obstétrica de causa no especificada").
		Save(ctx)
	if err != nil {
		t.Fatalf("create causa: %v", err)
	}

	return New(client, nil), client, fixtures{madre: m, rn: rn, causa: causa}
}

func TestCreateDefuncionMadre(t *testing.T) {
	svc, _, fx := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateRequest{
		Sujeto:           SujetoMadre(fx.madre.ID),
		FechaDefuncion:   time.Date(2024, 6, 2, 3, 15, 0, 0, time.UTC),
		CausaDefuncionID: fx.causa.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if d.MadreID == nil || *d.MadreID != fx.madre.ID {
		t.Errorf("MadreID = %v, want %v", d.MadreID, fx.madre.ID)
	}
	if d.RecienNacidoID != nil {
		t.Errorf("RecienNacidoID = %v, want nil", d.RecienNacidoID)
	}

	// A second record for the same mother is rejected.
	_, err = svc.Create(ctx, CreateRequest{
		Sujeto:           SujetoMadre(fx.madre.ID),
		FechaDefuncion:   time.Now(),
		CausaDefuncionID: fx.causa.ID,
	})
	if !errors.Is(err, ErrDefuncionRegistrada) {
		t.Errorf("Create(again) error = %v, want ErrDefuncionRegistrada", err)
	}
}

func TestCreateDefuncionRecienNacido(t *testing.T) {
	svc, _, fx := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateRequest{
		Sujeto:           SujetoRecienNacido(fx.rn.ID),
		FechaDefuncion:   time.Now(),
		CausaDefuncionID: fx.causa.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if d.RecienNacidoID == nil || *d.RecienNacidoID != fx.rn.ID {
		t.Errorf("RecienNacidoID = %v, want %v", d.RecienNacidoID, fx.rn.ID)
	}
	if d.MadreID != nil {
		t.Errorf("MadreID = %v, want nil", d.MadreID)
	}
}

func TestCreateDefuncionInvalid(t *testing.T) {
	svc, _, fx := newTestService(t)
	ctx := context.Background()

	// Zero-value subject references nobody.
	_, err := svc.Create(ctx, CreateRequest{
		FechaDefuncion:   time.Now(),
		CausaDefuncionID: fx.causa.ID,
	})
	if !errors.Is(err, ErrSujetoInvalido) {
		t.Errorf("Create(zero sujeto) error = %v, want ErrSujetoInvalido", err)
	}

	_, err = svc.Create(ctx, CreateRequest{
		Sujeto:           SujetoMadre(fx.madre.ID),
		FechaDefuncion:   time.Now(),
		CausaDefuncionID: uuid.New(),
	})
	if !errors.Is(err, ErrCausaNotFound) {
		t.Errorf("Create(unknown causa) error = %v, want ErrCausaNotFound", err)
	}

	_, err = svc.Create(ctx, CreateRequest{
		Sujeto:           SujetoMadre(uuid.New()),
		FechaDefuncion:   time.Now(),
		CausaDefuncionID: fx.causa.ID,
	})
	if !errors.Is(err, ErrMadreNotFound) {
		t.Errorf("Create(unknown madre) error = %v, want ErrMadreNotFound", err)
	}

	_, err = svc.Create(ctx, CreateRequest{
		Sujeto:           SujetoRecienNacido(uuid.New()),
		FechaDefuncion:   time.Now(),
		CausaDefuncionID: fx.causa.ID,
	})
	if !errors.Is(err, ErrRecienNacidoNotFound) {
		t.Errorf("Create(unknown recien nacido) error = %v, want ErrRecienNacidoNotFound", err)
	}
}

func TestListAndDeleteDefuncion(t *testing.T) {
	svc, _, fx := newTestService(t)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateRequest{
		Sujeto:           SujetoMadre(fx.madre.ID),
		FechaDefuncion:   time.Now(),
		CausaDefuncionID: fx.causa.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	res, err := svc.List(ctx, ListRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 1 || len(res.Data) != 1 {
		t.Fatalf("List() total = %d, len = %d, want 1", res.Total, len(res.Data))
	}
	if res.Data[0].Edges.CausaDefuncion == nil || res.Data[0].Edges.CausaDefuncion.Codigo != "O95" {
		t.Error("List() did not eager-load causa de defuncion")
	}

	if err := svc.Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.GetByID(ctx, d.ID); !errors.Is(err, ErrDefuncionNotFound) {
		t.Errorf("GetByID(deleted) error = %v, want ErrDefuncionNotFound", err)
	}
	if err := svc.Delete(ctx, d.ID); !errors.Is(err, ErrDefuncionNotFound) {
		t.Errorf("Delete(again) error = %v, want ErrDefuncionNotFound", err)
	}
}
