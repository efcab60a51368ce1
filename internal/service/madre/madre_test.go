package madre

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	"github.com/saludmaterna/maternidad_backend/internal/repo/enttest"
	entmadre "github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/pkg/crypto"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestService(t *testing.T) (Service, *repo.Client, *crypto.EncryptedField) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	field, err := crypto.NewEncryptedField(testKeyHex)
	if err != nil {
		t.Fatalf("NewEncryptedField() error = %v", err)
	}

	return New(client, field, nil, nil), client, field
}

func createMadre(t *testing.T, svc Service) *Record {
	t.Helper()
	telefono := "+56961234567"
	m, err := svc.Create(context.Background(), CreateRequest{
		FichaClinicaID:  "FC-2024-001",
		Rut:             "12.345.678-5",
		Nombre:          "Carolina Pérez Lagos",
		Telefono:        &telefono,
		FechaNacimiento: time.Date(1992, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return m
}

func TestCreateMadre(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	m := createMadre(t, svc)

	if m.Rut != "12345678-5" {
		t.Errorf("Rut = %q, want normalized", m.Rut)
	}
	if m.Nombre != "Carolina Pérez Lagos" {
		t.Errorf("Nombre = %q", m.Nombre)
	}
	if m.Telefono != "+56961234567" {
		t.Errorf("Telefono = %q, want E.164", m.Telefono)
	}
	if m.Prevision != entmadre.PrevisionFONASA {
		t.Errorf("Prevision = %q, want default FONASA", m.Prevision)
	}
	if m.Nacionalidad != "Chilena" {
		t.Errorf("Nacionalidad = %q, want default Chilena", m.Nacionalidad)
	}

	// Stored columns never hold the plaintext.
	row, err := client.Madre.Get(ctx, m.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if strings.Contains(row.RutEncrypted, "12345678") {
		t.Error("rut_encrypted contains plaintext")
	}
	if row.RutHash != crypto.Hash("12345678-5") {
		t.Error("rut_hash does not match deterministic hash")
	}
}

func TestCreateMadreDuplicates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	createMadre(t, svc)

	_, err := svc.Create(ctx, CreateRequest{
		FichaClinicaID:  "FC-2024-001",
		Rut:             "7775577-2",
		Nombre:          "Otra Persona",
		FechaNacimiento: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrFichaRegistrada) {
		t.Errorf("Create(duplicate ficha) error = %v, want ErrFichaRegistrada", err)
	}

	_, err = svc.Create(ctx, CreateRequest{
		FichaClinicaID:  "FC-2024-002",
		Rut:             "12345678-5",
		Nombre:          "Otra Persona",
		FechaNacimiento: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrRutRegistrado) {
		t.Errorf("Create(duplicate rut) error = %v, want ErrRutRegistrado", err)
	}
}

func TestCreateMadreInvalidInput(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{
		FichaClinicaID:  "FC-2024-001",
		Rut:             "no-es-rut",
		Nombre:          "X",
		FechaNacimiento: time.Now(),
	})
	if !errors.Is(err, ErrRutInvalido) {
		t.Errorf("Create(bad rut) error = %v, want ErrRutInvalido", err)
	}

	bad := "no-es-telefono"
	_, err = svc.Create(ctx, CreateRequest{
		FichaClinicaID:  "FC-2024-001",
		Rut:             "12345678-5",
		Nombre:          "X",
		Telefono:        &bad,
		FechaNacimiento: time.Now(),
	})
	if !errors.Is(err, ErrTelefonoInvalido) {
		t.Errorf("Create(bad telefono) error = %v, want ErrTelefonoInvalido", err)
	}
}

func TestCreateMadreRutSinDigitoVerificado(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	// Well-formed RUTs are accepted as-is; the check digit is not recomputed.
	m, err := svc.Create(ctx, CreateRequest{
		FichaClinicaID:  "FC-2024-010",
		Rut:             "12345678-9",
		Nombre:          "Ana Morales",
		FechaNacimiento: time.Date(1995, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if m.Rut != "12345678-9" {
		t.Errorf("Rut = %q, want %q", m.Rut, "12345678-9")
	}

	got, err := svc.BuscarPorRut(ctx, "12.345.678-9")
	if err != nil {
		t.Fatalf("BuscarPorRut() error = %v", err)
	}
	if got.ID != m.ID {
		t.Errorf("BuscarPorRut() ID = %v, want %v", got.ID, m.ID)
	}
}

func TestBuscarPorRut(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	created := createMadre(t, svc)

	// Formatting differences must not matter: lookup goes through the hash.
	m, err := svc.BuscarPorRut(ctx, "12.345.678-5")
	if err != nil {
		t.Fatalf("BuscarPorRut() error = %v", err)
	}
	if m.ID != created.ID {
		t.Errorf("BuscarPorRut() ID = %v, want %v", m.ID, created.ID)
	}
	if m.Nombre != created.Nombre {
		t.Errorf("Nombre = %q, want %q", m.Nombre, created.Nombre)
	}

	_, err = svc.BuscarPorRut(ctx, "7775577-2")
	if !errors.Is(err, ErrMadreNotFound) {
		t.Errorf("BuscarPorRut(unknown) error = %v, want ErrMadreNotFound", err)
	}
}

func TestUpdateMadre(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	m := createMadre(t, svc)

	nuevoNombre := "Carolina Pérez Soto"
	prevision := "ISAPRE"
	updated, err := svc.Update(ctx, m.ID, UpdateRequest{
		Nombre:    &nuevoNombre,
		Prevision: &prevision,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Nombre != nuevoNombre {
		t.Errorf("Nombre = %q, want %q", updated.Nombre, nuevoNombre)
	}
	if updated.Prevision != entmadre.PrevisionISAPRE {
		t.Errorf("Prevision = %q, want ISAPRE", updated.Prevision)
	}

	// Clearing the phone wipes both hash and ciphertext.
	empty := ""
	updated, err = svc.Update(ctx, m.ID, UpdateRequest{Telefono: &empty})
	if err != nil {
		t.Fatalf("Update(clear telefono) error = %v", err)
	}
	if updated.Telefono != "" {
		t.Errorf("Telefono = %q, want empty", updated.Telefono)
	}
}

func TestDeleteMadreCascades(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()
	m := createMadre(t, svc)

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
		SetSexo("Femenino").
		SetPesoGramos(3200).
		SetTallaCm(49.5).
		SetApgar1Min(8).
		SetApgar5Min(9).
		Save(ctx)
	if err != nil {
		t.Fatalf("create recien nacido: %v", err)
	}

	d, err := client.DiagnosticoCIE10.Create().
		SetCodigo("O80.0").
		SetDescripcion("Parto único espontáneo").
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
	if _, err := client.DocumentoReferencia.Create().
		SetPartoID(p.ID).
		SetMongodbObjectID("64b1f0a2c3d4e5f601234567").
		SetNombreArchivo("Epicrisis_FC-2024-001.pdf").
		Save(ctx); err != nil {
		t.Fatalf("create documento: %v", err)
	}

	if err := svc.Delete(ctx, m.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if n := client.Parto.Query().CountX(ctx); n != 0 {
		t.Errorf("partos remaining = %d, want 0", n)
	}
	if n := client.RecienNacido.Query().CountX(ctx); n != 0 {
		t.Errorf("recien nacidos remaining = %d, want 0", n)
	}
	if n := client.PartoDiagnostico.Query().CountX(ctx); n != 0 {
		t.Errorf("diagnosis links remaining = %d, want 0", n)
	}
	if n := client.DocumentoReferencia.Query().CountX(ctx); n != 0 {
		t.Errorf("documentos remaining = %d, want 0", n)
	}
	// The catalog entry itself survives; only the link rows cascade.
	if n := client.DiagnosticoCIE10.Query().CountX(ctx); n != 1 {
		t.Errorf("diagnosticos remaining = %d, want 1", n)
	}
	_ = rn

	if _, err := svc.GetByID(ctx, m.ID); !errors.Is(err, ErrMadreNotFound) {
		t.Errorf("GetByID(deleted) error = %v, want ErrMadreNotFound", err)
	}
}
