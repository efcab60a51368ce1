package parto

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

func createMadre(t *testing.T, client *repo.Client) *repo.Madre {
	t.Helper()
	m, err := client.Madre.Create().
		SetFichaClinicaID("FC-2024-001").
		SetRutHash(crypto.Hash("12345678-5")).
		SetRutEncrypted("ct-rut").
		SetNombreHash(crypto.Hash("Carolina Pérez Lagos")).
		SetNombreEncrypted("ct-nombre").
		SetFechaNacimiento(time.Date(1992, 3, 14, 0, 0, 0, 0, time.UTC)).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create madre: %v", err)
	}
	return m
}

func TestCreateParto(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	m := createMadre(t, client)

	eg := 38
	anestesia := "Epidural"
	p, err := svc.Create(ctx, CreateRequest{
		MadreID:         m.ID,
		FechaParto:      time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC),
		EdadGestacional: &eg,
		TipoParto:       "Cesárea Urgencia",
		Anestesia:       &anestesia,
		PartogramaData:  map[string]any{"dilatacion_cm": 6},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if string(p.TipoParto) != "Cesárea Urgencia" {
		t.Errorf("TipoParto = %q, want Cesárea Urgencia", p.TipoParto)
	}
	if string(p.Anestesia) != "Epidural" {
		t.Errorf("Anestesia = %q, want Epidural", p.Anestesia)
	}
	if p.EdadGestacional == nil || *p.EdadGestacional != 38 {
		t.Errorf("EdadGestacional = %v, want 38", p.EdadGestacional)
	}

	_, err = svc.Create(ctx, CreateRequest{
		MadreID:    uuid.New(),
		FechaParto: time.Now(),
		TipoParto:  "Eutócico",
	})
	if !errors.Is(err, ErrMadreNotFound) {
		t.Errorf("Create(unknown madre) error = %v, want ErrMadreNotFound", err)
	}
}

func TestListByMadre(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	m := createMadre(t, client)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, CreateRequest{
			MadreID:    m.ID,
			FechaParto: time.Date(2020+i, 1, 1, 0, 0, 0, 0, time.UTC),
			TipoParto:  "Eutócico",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	partos, err := svc.ListByMadre(ctx, m.ID)
	if err != nil {
		t.Fatalf("ListByMadre() error = %v", err)
	}
	if len(partos) != 3 {
		t.Fatalf("len(partos) = %d, want 3", len(partos))
	}
	// Most recent first.
	if !partos[0].FechaParto.After(partos[2].FechaParto) {
		t.Error("partos not ordered by fecha_parto descending")
	}
}

func TestCreateRecienNacidoValidation(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	m := createMadre(t, client)

	p, err := svc.Create(ctx, CreateRequest{
		MadreID:    m.ID,
		FechaParto: time.Now(),
		TipoParto:  "Eutócico",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	sexo := "Femenino"
	base := CreateRecienNacidoRequest{
		EstadoAlNacer: "Vivo",
		Sexo:          &sexo,
		PesoGramos:    intp(3200),
		TallaCm:       floatp(49.5),
		Apgar1Min:     intp(8),
		Apgar5Min:     intp(9),
	}

	tests := []struct {
		name    string
		mutate  func(*CreateRecienNacidoRequest)
		wantErr error
	}{
		{"apgar 1min alto", func(r *CreateRecienNacidoRequest) { r.Apgar1Min = intp(11) }, ErrApgarFueraDeRango},
		{"apgar 5min negativo", func(r *CreateRecienNacidoRequest) { r.Apgar5Min = intp(-1) }, ErrApgarFueraDeRango},
		{"peso cero", func(r *CreateRecienNacidoRequest) { r.PesoGramos = intp(0) }, ErrPesoInvalido},
		{"talla cero", func(r *CreateRecienNacidoRequest) { r.TallaCm = floatp(0) }, ErrTallaInvalida},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			if _, err := svc.CreateRecienNacido(ctx, p.ID, req); !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateRecienNacido() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	rn, err := svc.CreateRecienNacido(ctx, p.ID, base)
	if err != nil {
		t.Fatalf("CreateRecienNacido() error = %v", err)
	}
	if rn.PartoID != p.ID {
		t.Errorf("PartoID = %v, want %v", rn.PartoID, p.ID)
	}
	if rn.Apgar5Min == nil || *rn.Apgar5Min != 9 {
		t.Errorf("Apgar5Min = %v, want 9", rn.Apgar5Min)
	}

	if _, err := svc.CreateRecienNacido(ctx, uuid.New(), base); !errors.Is(err, ErrPartoNotFound) {
		t.Errorf("CreateRecienNacido(unknown parto) error = %v, want ErrPartoNotFound", err)
	}

	rns, err := svc.ListRecienNacidos(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListRecienNacidos() error = %v", err)
	}
	if len(rns) != 1 {
		t.Errorf("len(rns) = %d, want 1", len(rns))
	}
}

func TestCreateRecienNacidoSinVitales(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	m := createMadre(t, client)

	p, err := svc.Create(ctx, CreateRequest{
		MadreID:    m.ID,
		FechaParto: time.Now(),
		TipoParto:  "Eutócico",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Vitals are recorded later; registration needs only the birth status.
	rn, err := svc.CreateRecienNacido(ctx, p.ID, CreateRecienNacidoRequest{
		EstadoAlNacer: "Vivo",
	})
	if err != nil {
		t.Fatalf("CreateRecienNacido() error = %v", err)
	}
	if rn.PesoGramos != nil || rn.TallaCm != nil || rn.Apgar1Min != nil || rn.Apgar5Min != nil {
		t.Errorf("vitals should be unset, got peso=%v talla=%v apgar=%v/%v",
			rn.PesoGramos, rn.TallaCm, rn.Apgar1Min, rn.Apgar5Min)
	}
	if rn.Sexo != "" {
		t.Errorf("Sexo = %q, want unset", rn.Sexo)
	}
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func TestGetByIDCargaDiagnosticos(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	m := createMadre(t, client)

	p, err := svc.Create(ctx, CreateRequest{
		MadreID:    m.ID,
		FechaParto: time.Now(),
		TipoParto:  "Cesárea Urgencia",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	d, err := client.DiagnosticoCIE10.Create().
		SetCodigo("O82.1").
		SetDescripcion("Parto único por cesárea").
		Save(ctx)
	if err != nil {
		t.Fatalf("create diagnostico: %v", err)
	}
	if _, err := client.PartoDiagnostico.Create().
		SetPartoID(p.ID).
		SetDiagnosticoID(d.ID).
		Save(ctx); err != nil {
		t.Fatalf("link diagnostico: %v", err)
	}

	got, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	links := got.Edges.PartoDiagnosticos
	if len(links) != 1 {
		t.Fatalf("len(PartoDiagnosticos) = %d, want 1", len(links))
	}
	diag := links[0].Edges.Diagnostico
	if diag == nil || diag.Descripcion != "Parto único por cesárea" {
		t.Errorf("linked diagnostico = %v, want descripcion loaded", diag)
	}
}

func TestUpdateParto(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	m := createMadre(t, client)

	p, err := svc.Create(ctx, CreateRequest{
		MadreID:    m.ID,
		FechaParto: time.Now(),
		TipoParto:  "Eutócico",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, p.ID, UpdateRequest{
		PartogramaData: map[string]any{"dilatacion_cm": 10},
		EpicrisisData:  map[string]any{"resumen": "sin complicaciones"},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.PartogramaData["dilatacion_cm"] != 10 {
		t.Errorf("PartogramaData = %v", updated.PartogramaData)
	}
	if updated.EpicrisisData["resumen"] != "sin complicaciones" {
		t.Errorf("EpicrisisData = %v", updated.EpicrisisData)
	}
	// Registration-time fields stay fixed.
	if string(updated.TipoParto) != "Eutócico" {
		t.Errorf("TipoParto = %q, want unchanged Eutócico", updated.TipoParto)
	}

	if _, err := svc.Update(ctx, uuid.New(), UpdateRequest{}); !errors.Is(err, ErrPartoNotFound) {
		t.Errorf("Update(unknown) error = %v, want ErrPartoNotFound", err)
	}
}
