package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/saludmaterna/maternidad_backend/internal/repo"
	"github.com/saludmaterna/maternidad_backend/internal/service/madre"
	"github.com/saludmaterna/maternidad_backend/pkg/crypto"
)

// Views builds the REST projections. Clinical entities keep the encrypted
// identity columns out of the payload and serve decrypted values plus
// denormalized names from eager-loaded edges instead.
type Views struct {
	field *crypto.EncryptedField
}

func NewViews(field *crypto.EncryptedField) *Views {
	return &Views{field: field}
}

// ---------------------------------------------------------------------------
// Identity
// ---------------------------------------------------------------------------

type RolView struct {
	ID          uuid.UUID `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
}

func (v *Views) Rol(r *repo.Rol) RolView {
	return RolView{ID: r.ID, Nombre: r.Nombre, Descripcion: r.Descripcion}
}

func (v *Views) Roles(rs []*repo.Rol) []RolView {
	out := make([]RolView, 0, len(rs))
	for _, r := range rs {
		out = append(out, v.Rol(r))
	}
	return out
}

type UsuarioView struct {
	ID             uuid.UUID `json:"id"`
	Rut            string    `json:"rut"`
	NombreCompleto string    `json:"nombre_completo"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	RolID          uuid.UUID `json:"rol_id"`
	RolNombre      string    `json:"rol_nombre,omitempty"`
	Activo         bool      `json:"activo"`
	CreatedAt      time.Time `json:"created_at"`
}

func (v *Views) Usuario(u *repo.Usuario) UsuarioView {
	view := UsuarioView{
		ID:             u.ID,
		Rut:            u.Rut,
		NombreCompleto: u.NombreCompleto,
		Email:          u.Email,
		Username:       u.Username,
		RolID:          u.RolID,
		Activo:         u.Activo,
		CreatedAt:      u.CreatedAt,
	}
	if u.Edges.Rol != nil {
		view.RolNombre = u.Edges.Rol.Nombre
	}
	return view
}

func (v *Views) Usuarios(us []*repo.Usuario) []UsuarioView {
	out := make([]UsuarioView, 0, len(us))
	for _, u := range us {
		out = append(out, v.Usuario(u))
	}
	return out
}

// ---------------------------------------------------------------------------
// Madres
// ---------------------------------------------------------------------------

type MadreView struct {
	ID                        uuid.UUID `json:"id"`
	FichaClinicaID            string    `json:"ficha_clinica_id"`
	Rut                       string    `json:"rut"`
	Nombre                    string    `json:"nombre"`
	Telefono                  string    `json:"telefono,omitempty"`
	FechaNacimiento           time.Time `json:"fecha_nacimiento"`
	Nacionalidad              string    `json:"nacionalidad"`
	PertenecePuebloOriginario bool      `json:"pertenece_pueblo_originario"`
	Prevision                 string    `json:"prevision"`
	AntecedentesMedicos       string    `json:"antecedentes_medicos,omitempty"`
	CreatedAt                 time.Time `json:"created_at"`
}

func (v *Views) Madre(m *madre.Record) MadreView {
	return MadreView{
		ID:                        m.ID,
		FichaClinicaID:            m.FichaClinicaID,
		Rut:                       m.Rut,
		Nombre:                    m.Nombre,
		Telefono:                  m.Telefono,
		FechaNacimiento:           m.FechaNacimiento,
		Nacionalidad:              m.Nacionalidad,
		PertenecePuebloOriginario: m.PertenecePuebloOriginario,
		Prevision:                 string(m.Prevision),
		AntecedentesMedicos:       m.AntecedentesMedicos,
		CreatedAt:                 m.CreatedAt,
	}
}

func (v *Views) Madres(ms []*madre.Record) []MadreView {
	out := make([]MadreView, 0, len(ms))
	for _, m := range ms {
		out = append(out, v.Madre(m))
	}
	return out
}

// madreNombre decrypts the mother's display name from an eager-loaded edge.
// Decryption failures degrade to an empty field rather than failing the view.
func (v *Views) madreNombre(m *repo.Madre) string {
	if m == nil || v.field == nil {
		return ""
	}
	nombre, err := v.field.Open(m.NombreEncrypted)
	if err != nil {
		return ""
	}
	return nombre
}

// ---------------------------------------------------------------------------
// Partos
// ---------------------------------------------------------------------------

type PartoView struct {
	ID              uuid.UUID      `json:"id"`
	MadreID         uuid.UUID      `json:"madre_id"`
	MadreFicha      string         `json:"madre_ficha,omitempty"`
	MadreNombre     string         `json:"madre_nombre,omitempty"`
	FechaParto      time.Time      `json:"fecha_parto"`
	EdadGestacional *int           `json:"edad_gestacional,omitempty"`
	TipoParto       string         `json:"tipo_parto"`
	Anestesia       string         `json:"anestesia"`
	PartogramaData  map[string]any `json:"partograma_data,omitempty"`
	EpicrisisData   map[string]any `json:"epicrisis_data,omitempty"`

	UsuarioRegistroID     *uuid.UUID `json:"usuario_registro_id,omitempty"`
	UsuarioRegistroNombre string     `json:"usuario_registro_nombre,omitempty"`

	RecienNacidos []RecienNacidoView `json:"recien_nacidos,omitempty"`
	Diagnosticos  []DiagnosticoView  `json:"diagnosticos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (v *Views) Parto(p *repo.Parto) PartoView {
	view := PartoView{
		ID:                p.ID,
		MadreID:           p.MadreID,
		FechaParto:        p.FechaParto,
		EdadGestacional:   p.EdadGestacional,
		TipoParto:         string(p.TipoParto),
		Anestesia:         string(p.Anestesia),
		PartogramaData:    p.PartogramaData,
		EpicrisisData:     p.EpicrisisData,
		UsuarioRegistroID: p.UsuarioRegistroID,
		CreatedAt:         p.CreatedAt,
	}
	if p.Edges.Madre != nil {
		view.MadreFicha = p.Edges.Madre.FichaClinicaID
		view.MadreNombre = v.madreNombre(p.Edges.Madre)
	}
	if p.Edges.UsuarioRegistro != nil {
		view.UsuarioRegistroNombre = p.Edges.UsuarioRegistro.NombreCompleto
	}
	for _, rn := range p.Edges.RecienNacidos {
		view.RecienNacidos = append(view.RecienNacidos, v.RecienNacido(rn))
	}
	for _, link := range p.Edges.PartoDiagnosticos {
		if link.Edges.Diagnostico != nil {
			view.Diagnosticos = append(view.Diagnosticos, v.Diagnostico(link.Edges.Diagnostico))
		}
	}
	return view
}

func (v *Views) Partos(ps []*repo.Parto) []PartoView {
	out := make([]PartoView, 0, len(ps))
	for _, p := range ps {
		out = append(out, v.Parto(p))
	}
	return out
}

// ---------------------------------------------------------------------------
// Recien nacidos
// ---------------------------------------------------------------------------

type RecienNacidoView struct {
	ID                  uuid.UUID `json:"id"`
	PartoID             uuid.UUID `json:"parto_id"`
	RutProvisorio       string   `json:"rut_provisorio,omitempty"`
	EstadoAlNacer       string   `json:"estado_al_nacer"`
	Sexo                string   `json:"sexo,omitempty"`
	PesoGramos          *int     `json:"peso_gramos,omitempty"`
	TallaCm             *float64 `json:"talla_cm,omitempty"`
	Apgar1Min           *int     `json:"apgar_1_min,omitempty"`
	Apgar5Min           *int     `json:"apgar_5_min,omitempty"`
	ProfilaxisVitK      bool     `json:"profilaxis_vit_k"`
	ProfilaxisOftalmica bool     `json:"profilaxis_oftalmica"`

	PartoFecha            *time.Time `json:"parto_fecha,omitempty"`
	UsuarioRegistroNombre string     `json:"usuario_registro_nombre,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (v *Views) RecienNacido(rn *repo.RecienNacido) RecienNacidoView {
	view := RecienNacidoView{
		ID:                  rn.ID,
		PartoID:             rn.PartoID,
		RutProvisorio:       rn.RutProvisorio,
		EstadoAlNacer:       string(rn.EstadoAlNacer),
		Sexo:                string(rn.Sexo),
		PesoGramos:          rn.PesoGramos,
		TallaCm:             rn.TallaCm,
		Apgar1Min:           rn.Apgar1Min,
		Apgar5Min:           rn.Apgar5Min,
		ProfilaxisVitK:      rn.ProfilaxisVitK,
		ProfilaxisOftalmica: rn.ProfilaxisOftalmica,
		CreatedAt:           rn.CreatedAt,
	}
	if rn.Edges.Parto != nil {
		f := rn.Edges.Parto.FechaParto
		view.PartoFecha = &f
	}
	if rn.Edges.UsuarioRegistro != nil {
		view.UsuarioRegistroNombre = rn.Edges.UsuarioRegistro.NombreCompleto
	}
	return view
}

func (v *Views) RecienNacidos(rns []*repo.RecienNacido) []RecienNacidoView {
	out := make([]RecienNacidoView, 0, len(rns))
	for _, rn := range rns {
		out = append(out, v.RecienNacido(rn))
	}
	return out
}

// ---------------------------------------------------------------------------
// Diagnosticos
// ---------------------------------------------------------------------------

type DiagnosticoView struct {
	ID          uuid.UUID `json:"id"`
	Codigo      string    `json:"codigo"`
	Descripcion string    `json:"descripcion"`
}

func (v *Views) Diagnostico(d *repo.DiagnosticoCIE10) DiagnosticoView {
	return DiagnosticoView{ID: d.ID, Codigo: d.Codigo, Descripcion: d.Descripcion}
}

func (v *Views) Diagnosticos(ds []*repo.DiagnosticoCIE10) []DiagnosticoView {
	out := make([]DiagnosticoView, 0, len(ds))
	for _, d := range ds {
		out = append(out, v.Diagnostico(d))
	}
	return out
}

// ---------------------------------------------------------------------------
// Defunciones
// ---------------------------------------------------------------------------

type DefuncionView struct {
	ID             uuid.UUID `json:"id"`
	FechaDefuncion time.Time `json:"fecha_defuncion"`

	MadreID        *uuid.UUID `json:"madre_id,omitempty"`
	MadreNombre    string     `json:"madre_nombre,omitempty"`
	RecienNacidoID *uuid.UUID `json:"recien_nacido_id,omitempty"`

	CausaDefuncionID     uuid.UUID `json:"causa_defuncion_id"`
	CausaDefuncionCodigo string    `json:"causa_defuncion_codigo,omitempty"`
	CausaDefuncionNombre string    `json:"causa_defuncion_nombre,omitempty"`

	UsuarioRegistroID     *uuid.UUID `json:"usuario_registro_id,omitempty"`
	UsuarioRegistroNombre string     `json:"usuario_registro_nombre,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (v *Views) Defuncion(d *repo.Defuncion) DefuncionView {
	view := DefuncionView{
		ID:                d.ID,
		FechaDefuncion:    d.FechaDefuncion,
		MadreID:           d.MadreID,
		RecienNacidoID:    d.RecienNacidoID,
		CausaDefuncionID:  d.CausaDefuncionID,
		UsuarioRegistroID: d.UsuarioRegistroID,
		CreatedAt:         d.CreatedAt,
	}
	if d.Edges.Madre != nil {
		view.MadreNombre = v.madreNombre(d.Edges.Madre)
	}
	if d.Edges.CausaDefuncion != nil {
		view.CausaDefuncionCodigo = d.Edges.CausaDefuncion.Codigo
		view.CausaDefuncionNombre = d.Edges.CausaDefuncion.Descripcion
	}
	if d.Edges.UsuarioRegistro != nil {
		view.UsuarioRegistroNombre = d.Edges.UsuarioRegistro.NombreCompleto
	}
	return view
}

func (v *Views) Defunciones(ds []*repo.Defuncion) []DefuncionView {
	out := make([]DefuncionView, 0, len(ds))
	for _, d := range ds {
		out = append(out, v.Defuncion(d))
	}
	return out
}

// ---------------------------------------------------------------------------
// Documentos
// ---------------------------------------------------------------------------

type DocumentoView struct {
	ID              uuid.UUID `json:"id"`
	PartoID         uuid.UUID `json:"parto_id"`
	MongoDBObjectID string    `json:"mongodb_object_id"`
	NombreArchivo   string    `json:"nombre_archivo"`
	TipoDocumento   string    `json:"tipo_documento"`

	PartoFecha              *time.Time `json:"parto_fecha,omitempty"`
	UsuarioGeneracionID     *uuid.UUID `json:"usuario_generacion_id,omitempty"`
	UsuarioGeneracionNombre string     `json:"usuario_generacion_nombre,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (v *Views) Documento(d *repo.DocumentoReferencia) DocumentoView {
	view := DocumentoView{
		ID:                  d.ID,
		PartoID:             d.PartoID,
		MongoDBObjectID:     d.MongodbObjectID,
		NombreArchivo:       d.NombreArchivo,
		TipoDocumento:       string(d.TipoDocumento),
		UsuarioGeneracionID: d.UsuarioGeneracionID,
		CreatedAt:           d.CreatedAt,
	}
	if d.Edges.Parto != nil {
		f := d.Edges.Parto.FechaParto
		view.PartoFecha = &f
	}
	if d.Edges.UsuarioGeneracion != nil {
		view.UsuarioGeneracionNombre = d.Edges.UsuarioGeneracion.NombreCompleto
	}
	return view
}

func (v *Views) Documentos(ds []*repo.DocumentoReferencia) []DocumentoView {
	out := make([]DocumentoView, 0, len(ds))
	for _, d := range ds {
		out = append(out, v.Documento(d))
	}
	return out
}

// ---------------------------------------------------------------------------
// Auditoria
// ---------------------------------------------------------------------------

type AuditoriaView struct {
	ID            uuid.UUID      `json:"id"`
	UsuarioID     *uuid.UUID     `json:"usuario_id,omitempty"`
	UsuarioNombre string         `json:"usuario_nombre,omitempty"`
	Accion        string         `json:"accion"`
	TablaAfectada string         `json:"tabla_afectada,omitempty"`
	RegistroID    *uuid.UUID     `json:"registro_id,omitempty"`
	Detalles      map[string]any `json:"detalles,omitempty"`
	IPUsuario     string         `json:"ip_usuario,omitempty"`
	FechaAccion   time.Time      `json:"fecha_accion"`
}

func (v *Views) Auditoria(l *repo.LogAuditoria) AuditoriaView {
	view := AuditoriaView{
		ID:            l.ID,
		UsuarioID:     l.UsuarioID,
		Accion:        l.Accion,
		TablaAfectada: l.TablaAfectada,
		RegistroID:    l.RegistroID,
		Detalles:      l.Detalles,
		IPUsuario:     l.IPUsuario,
		FechaAccion:   l.FechaAccion,
	}
	if l.Edges.Usuario != nil {
		view.UsuarioNombre = l.Edges.Usuario.NombreCompleto
	}
	return view
}

func (v *Views) Auditorias(ls []*repo.LogAuditoria) []AuditoriaView {
	out := make([]AuditoriaView, 0, len(ls))
	for _, l := range ls {
		out = append(out, v.Auditoria(l))
	}
	return out
}
