package handler

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	"github.com/saludmaterna/maternidad_backend/pkg/crypto"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestViews(t *testing.T) (*Views, *crypto.EncryptedField) {
	t.Helper()
	field, err := crypto.NewEncryptedField(testKeyHex)
	if err != nil {
		t.Fatalf("NewEncryptedField() error = %v", err)
	}
	return NewViews(field), field
}

func encryptedMadre(t *testing.T, field *crypto.EncryptedField, nombre string) *repo.Madre {
	t.Helper()
	hash, ct, err := field.Store(nombre)
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	return &repo.Madre{
		ID:              uuid.New(),
		FichaClinicaID:  "FC-2024-001",
		NombreHash:      hash,
		NombreEncrypted: ct,
	}
}

func TestPartoViewDenormalization(t *testing.T) {
	views, field := newTestViews(t)

	m := encryptedMadre(t, field, "Carolina Pérez Lagos")
	fecha := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	actorID := uuid.New()

	p := &repo.Parto{
		ID:                uuid.New(),
		MadreID:           m.ID,
		FechaParto:        fecha,
		TipoParto:         "Cesárea Urgencia",
		UsuarioRegistroID: &actorID,
	}
	p.Edges.Madre = m
	p.Edges.UsuarioRegistro = &repo.Usuario{ID: actorID, NombreCompleto: "Matrona Rivas"}
	p.Edges.RecienNacidos = []*repo.RecienNacido{
		{ID: uuid.New(), PartoID: p.ID, EstadoAlNacer: "Vivo", Sexo: "Femenino", Apgar1Min: intp(8), Apgar5Min: intp(9)},
	}
	link := &repo.PartoDiagnostico{ID: uuid.New(), PartoID: p.ID}
	link.Edges.Diagnostico = &repo.DiagnosticoCIE10{
		ID:          uuid.New(),
		Codigo:      "O82.1",
		Descripcion: "Parto único por cesárea",
	}
	p.Edges.PartoDiagnosticos = []*repo.PartoDiagnostico{link}

	view := views.Parto(p)

	if view.MadreNombre != "Carolina Pérez Lagos" {
		t.Errorf("MadreNombre = %q, want decrypted name", view.MadreNombre)
	}
	if view.MadreFicha != "FC-2024-001" {
		t.Errorf("MadreFicha = %q", view.MadreFicha)
	}
	if view.UsuarioRegistroNombre != "Matrona Rivas" {
		t.Errorf("UsuarioRegistroNombre = %q", view.UsuarioRegistroNombre)
	}
	if view.TipoParto != "Cesárea Urgencia" {
		t.Errorf("TipoParto = %q", view.TipoParto)
	}
	if len(view.RecienNacidos) != 1 {
		t.Fatalf("len(RecienNacidos) = %d, want 1", len(view.RecienNacidos))
	}
	if got := view.RecienNacidos[0].Apgar5Min; got == nil || *got != 9 {
		t.Errorf("nested Apgar5Min = %v, want 9", got)
	}
	if len(view.Diagnosticos) != 1 {
		t.Fatalf("len(Diagnosticos) = %d, want 1", len(view.Diagnosticos))
	}
	if view.Diagnosticos[0].Descripcion != "Parto único por cesárea" {
		t.Errorf("Diagnosticos[0].Descripcion = %q", view.Diagnosticos[0].Descripcion)
	}
	if view.Diagnosticos[0].Codigo != "O82.1" {
		t.Errorf("Diagnosticos[0].Codigo = %q", view.Diagnosticos[0].Codigo)
	}
}

func TestPartoViewWithoutEdges(t *testing.T) {
	views, _ := newTestViews(t)

	view := views.Parto(&repo.Parto{ID: uuid.New(), TipoParto: "Eutócico"})

	if view.MadreNombre != "" || view.MadreFicha != "" || view.UsuarioRegistroNombre != "" {
		t.Errorf("denormalized fields = (%q, %q, %q), want empty without edges",
			view.MadreNombre, view.MadreFicha, view.UsuarioRegistroNombre)
	}
}

func TestMadreNombreDecryptFailure(t *testing.T) {
	views, _ := newTestViews(t)

	// Garbage ciphertext must degrade to an empty name, not an error.
	got := views.madreNombre(&repo.Madre{NombreEncrypted: "not-a-ciphertext"})
	if got != "" {
		t.Errorf("madreNombre(garbage) = %q, want empty", got)
	}
	if got := views.madreNombre(nil); got != "" {
		t.Errorf("madreNombre(nil) = %q, want empty", got)
	}
}

func TestDefuncionViewDenormalization(t *testing.T) {
	views, field := newTestViews(t)

	m := encryptedMadre(t, field, "Ana Soto Fuentes")
	d := &repo.Defuncion{
		ID:             uuid.New(),
		MadreID:        &m.ID,
		FechaDefuncion: time.Now(),
	}
	d.Edges.Madre = m
	d.Edges.CausaDefuncion = &repo.DiagnosticoCIE10{
		ID:          uuid.New(),
		Codigo:      "O95",
		Descripcion: "Muerte obstétrica de causa no especificada",
	}

	view := views.Defuncion(d)

	if view.MadreNombre != "Ana Soto Fuentes" {
		t.Errorf("MadreNombre = %q", view.MadreNombre)
	}
	if view.CausaDefuncionCodigo != "O95" {
		t.Errorf("CausaDefuncionCodigo = %q", view.CausaDefuncionCodigo)
	}
	if view.CausaDefuncionNombre != "Muerte obstétrica de causa no especificada" {
		t.Errorf("CausaDefuncionNombre = %q", view.CausaDefuncionNombre)
	}
}

func TestRecienNacidoViewPartoFecha(t *testing.T) {
	views, _ := newTestViews(t)

	fecha := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	rn := &repo.RecienNacido{ID: uuid.New(), EstadoAlNacer: "Vivo"}
	rn.Edges.Parto = &repo.Parto{ID: uuid.New(), FechaParto: fecha}

	view := views.RecienNacido(rn)
	if view.PartoFecha == nil || !view.PartoFecha.Equal(fecha) {
		t.Errorf("PartoFecha = %v, want %v", view.PartoFecha, fecha)
	}
}

func TestDocumentoViewPartoFecha(t *testing.T) {
	views, _ := newTestViews(t)

	fecha := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	d := &repo.DocumentoReferencia{
		ID:              uuid.New(),
		MongodbObjectID: "64b1f0a2c3d4e5f601234567",
		NombreArchivo:   "Epicrisis_FC-2024-001.pdf",
		TipoDocumento:   "EPICRISIS_PDF",
	}
	d.Edges.Parto = &repo.Parto{ID: uuid.New(), FechaParto: fecha}

	view := views.Documento(d)
	if view.PartoFecha == nil || !view.PartoFecha.Equal(fecha) {
		t.Errorf("PartoFecha = %v, want %v", view.PartoFecha, fecha)
	}

	sin := views.Documento(&repo.DocumentoReferencia{ID: uuid.New()})
	if sin.PartoFecha != nil {
		t.Errorf("PartoFecha without edge = %v, want nil", sin.PartoFecha)
	}
}

func intp(v int) *int { return &v }
