package documento

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

func TestCreateDocumento(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createParto(t, client)

	d, err := svc.Create(ctx, CreateRequest{
		PartoID:         p.ID,
		MongoDBObjectID: " 64B1F0A2C3D4E5F601234567 ",
		NombreArchivo:   "epicrisis_fc-2024-001.pdf",
		TipoDocumento:   "EPICRISIS_PDF",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if d.MongodbObjectID != "64b1f0a2c3d4e5f601234567" {
		t.Errorf("MongodbObjectID = %q, want lowercased hex", d.MongodbObjectID)
	}
	if string(d.TipoDocumento) != "EPICRISIS_PDF" {
		t.Errorf("TipoDocumento = %q, want EPICRISIS_PDF", d.TipoDocumento)
	}

	// Registering the same object id twice is rejected regardless of case.
	_, err = svc.Create(ctx, CreateRequest{
		PartoID:         p.ID,
		MongoDBObjectID: "64B1F0A2C3D4E5F601234567",
		NombreArchivo:   "otro.pdf",
	})
	if !errors.Is(err, ErrObjetoRegistrado) {
		t.Errorf("Create(duplicate) error = %v, want ErrObjetoRegistrado", err)
	}
}

func TestCreateDocumentoInvalid(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createParto(t, client)

	tests := []struct {
		name     string
		objectID string
	}{
		{"vacio", ""},
		{"corto", "64b1f0a2"},
		{"largo", "64b1f0a2c3d4e5f6012345678"},
		{"no hex", "64b1f0a2c3d4e5f60123456z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, CreateRequest{
				PartoID:         p.ID,
				MongoDBObjectID: tt.objectID,
				NombreArchivo:   "doc.pdf",
			})
			if !errors.Is(err, ErrObjetoInvalido) {
				t.Errorf("Create(%q) error = %v, want ErrObjetoInvalido", tt.objectID, err)
			}
		})
	}

	_, err := svc.Create(ctx, CreateRequest{
		PartoID:         uuid.New(),
		MongoDBObjectID: "64b1f0a2c3d4e5f601234567",
		NombreArchivo:   "doc.pdf",
	})
	if !errors.Is(err, ErrPartoNotFound) {
		t.Errorf("Create(unknown parto) error = %v, want ErrPartoNotFound", err)
	}
}

func TestListAndDeleteDocumento(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	p := createParto(t, client)

	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, CreateRequest{
			PartoID:         p.ID,
			MongoDBObjectID: fmt.Sprintf("64b1f0a2c3d4e5f60123456%d", i),
			NombreArchivo:   fmt.Sprintf("doc_%d.pdf", i),
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	docs, err := svc.ListByParto(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListByParto() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len(docs) = %d, want 2", len(docs))
	}

	if err := svc.Delete(ctx, docs[0].ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.GetByID(ctx, docs[0].ID); !errors.Is(err, ErrDocumentoNotFound) {
		t.Errorf("GetByID(deleted) error = %v, want ErrDocumentoNotFound", err)
	}

	docs, err = svc.ListByParto(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListByParto() error = %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("len(docs) after delete = %d, want 1", len(docs))
	}
}
