// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/saludmaterna/maternidad_backend/internal/repo/defuncion"
	"github.com/saludmaterna/maternidad_backend/internal/repo/diagnosticocie10"
	"github.com/saludmaterna/maternidad_backend/internal/repo/documentoreferencia"
	"github.com/saludmaterna/maternidad_backend/internal/repo/logauditoria"
	"github.com/saludmaterna/maternidad_backend/internal/repo/madre"
	"github.com/saludmaterna/maternidad_backend/internal/repo/parto"
	"github.com/saludmaterna/maternidad_backend/internal/repo/partodiagnostico"
	"github.com/saludmaterna/maternidad_backend/internal/repo/reciennacido"
	"github.com/saludmaterna/maternidad_backend/internal/repo/rol"
	"github.com/saludmaterna/maternidad_backend/internal/repo/usuario"
	"github.com/saludmaterna/maternidad_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	defuncionMixin := schema.Defuncion{}.Mixin()
	defuncionMixinFields0 := defuncionMixin[0].Fields()
	_ = defuncionMixinFields0
	defuncionMixinFields1 := defuncionMixin[1].Fields()
	_ = defuncionMixinFields1
	defuncionFields := schema.Defuncion{}.Fields()
	_ = defuncionFields
	// defuncionDescCreatedAt is the schema descriptor for created_at field.
	defuncionDescCreatedAt := defuncionMixinFields1[0].Descriptor()
	// defuncion.DefaultCreatedAt holds the default value on creation for the created_at field.
	defuncion.DefaultCreatedAt = defuncionDescCreatedAt.Default.(func() time.Time)
	// defuncionDescUpdatedAt is the schema descriptor for updated_at field.
	defuncionDescUpdatedAt := defuncionMixinFields1[1].Descriptor()
	// defuncion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	defuncion.DefaultUpdatedAt = defuncionDescUpdatedAt.Default.(func() time.Time)
	// defuncion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	defuncion.UpdateDefaultUpdatedAt = defuncionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// defuncionDescID is the schema descriptor for id field.
	defuncionDescID := defuncionMixinFields0[0].Descriptor()
	// defuncion.DefaultID holds the default value on creation for the id field.
	defuncion.DefaultID = defuncionDescID.Default.(func() uuid.UUID)
	diagnosticocie10Mixin := schema.DiagnosticoCIE10{}.Mixin()
	diagnosticocie10MixinFields0 := diagnosticocie10Mixin[0].Fields()
	_ = diagnosticocie10MixinFields0
	diagnosticocie10MixinFields1 := diagnosticocie10Mixin[1].Fields()
	_ = diagnosticocie10MixinFields1
	diagnosticocie10Fields := schema.DiagnosticoCIE10{}.Fields()
	_ = diagnosticocie10Fields
	// diagnosticocie10DescCreatedAt is the schema descriptor for created_at field.
	diagnosticocie10DescCreatedAt := diagnosticocie10MixinFields1[0].Descriptor()
	// diagnosticocie10.DefaultCreatedAt holds the default value on creation for the created_at field.
	diagnosticocie10.DefaultCreatedAt = diagnosticocie10DescCreatedAt.Default.(func() time.Time)
	// diagnosticocie10DescUpdatedAt is the schema descriptor for updated_at field.
	diagnosticocie10DescUpdatedAt := diagnosticocie10MixinFields1[1].Descriptor()
	// diagnosticocie10.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	diagnosticocie10.DefaultUpdatedAt = diagnosticocie10DescUpdatedAt.Default.(func() time.Time)
	// diagnosticocie10.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	diagnosticocie10.UpdateDefaultUpdatedAt = diagnosticocie10DescUpdatedAt.UpdateDefault.(func() time.Time)
	// diagnosticocie10DescCodigo is the schema descriptor for codigo field.
	diagnosticocie10DescCodigo := diagnosticocie10Fields[0].Descriptor()
	// diagnosticocie10.CodigoValidator is a validator for the "codigo" field. It is called by the builders before save.
	diagnosticocie10.CodigoValidator = diagnosticocie10DescCodigo.Validators[0].(func(string) error)
	// diagnosticocie10DescID is the schema descriptor for id field.
	diagnosticocie10DescID := diagnosticocie10MixinFields0[0].Descriptor()
	// diagnosticocie10.DefaultID holds the default value on creation for the id field.
	diagnosticocie10.DefaultID = diagnosticocie10DescID.Default.(func() uuid.UUID)
	documentoreferenciaMixin := schema.DocumentoReferencia{}.Mixin()
	documentoreferenciaMixinFields0 := documentoreferenciaMixin[0].Fields()
	_ = documentoreferenciaMixinFields0
	documentoreferenciaMixinFields1 := documentoreferenciaMixin[1].Fields()
	_ = documentoreferenciaMixinFields1
	documentoreferenciaFields := schema.DocumentoReferencia{}.Fields()
	_ = documentoreferenciaFields
	// documentoreferenciaDescCreatedAt is the schema descriptor for created_at field.
	documentoreferenciaDescCreatedAt := documentoreferenciaMixinFields1[0].Descriptor()
	// documentoreferencia.DefaultCreatedAt holds the default value on creation for the created_at field.
	documentoreferencia.DefaultCreatedAt = documentoreferenciaDescCreatedAt.Default.(func() time.Time)
	// documentoreferenciaDescMongodbObjectID is the schema descriptor for mongodb_object_id field.
	documentoreferenciaDescMongodbObjectID := documentoreferenciaFields[1].Descriptor()
	// documentoreferencia.MongodbObjectIDValidator is a validator for the "mongodb_object_id" field. It is called by the builders before save.
	documentoreferencia.MongodbObjectIDValidator = documentoreferenciaDescMongodbObjectID.Validators[0].(func(string) error)
	// documentoreferenciaDescNombreArchivo is the schema descriptor for nombre_archivo field.
	documentoreferenciaDescNombreArchivo := documentoreferenciaFields[2].Descriptor()
	// documentoreferencia.NombreArchivoValidator is a validator for the "nombre_archivo" field. It is called by the builders before save.
	documentoreferencia.NombreArchivoValidator = documentoreferenciaDescNombreArchivo.Validators[0].(func(string) error)
	// documentoreferenciaDescID is the schema descriptor for id field.
	documentoreferenciaDescID := documentoreferenciaMixinFields0[0].Descriptor()
	// documentoreferencia.DefaultID holds the default value on creation for the id field.
	documentoreferencia.DefaultID = documentoreferenciaDescID.Default.(func() uuid.UUID)
	logauditoriaMixin := schema.LogAuditoria{}.Mixin()
	logauditoriaMixinFields0 := logauditoriaMixin[0].Fields()
	_ = logauditoriaMixinFields0
	logauditoriaFields := schema.LogAuditoria{}.Fields()
	_ = logauditoriaFields
	// logauditoriaDescAccion is the schema descriptor for accion field.
	logauditoriaDescAccion := logauditoriaFields[1].Descriptor()
	// logauditoria.AccionValidator is a validator for the "accion" field. It is called by the builders before save.
	logauditoria.AccionValidator = logauditoriaDescAccion.Validators[0].(func(string) error)
	// logauditoriaDescTablaAfectada is the schema descriptor for tabla_afectada field.
	logauditoriaDescTablaAfectada := logauditoriaFields[2].Descriptor()
	// logauditoria.TablaAfectadaValidator is a validator for the "tabla_afectada" field. It is called by the builders before save.
	logauditoria.TablaAfectadaValidator = logauditoriaDescTablaAfectada.Validators[0].(func(string) error)
	// logauditoriaDescIPUsuario is the schema descriptor for ip_usuario field.
	logauditoriaDescIPUsuario := logauditoriaFields[5].Descriptor()
	// logauditoria.IPUsuarioValidator is a validator for the "ip_usuario" field. It is called by the builders before save.
	logauditoria.IPUsuarioValidator = logauditoriaDescIPUsuario.Validators[0].(func(string) error)
	// logauditoriaDescFechaAccion is the schema descriptor for fecha_accion field.
	logauditoriaDescFechaAccion := logauditoriaFields[6].Descriptor()
	// logauditoria.DefaultFechaAccion holds the default value on creation for the fecha_accion field.
	logauditoria.DefaultFechaAccion = logauditoriaDescFechaAccion.Default.(func() time.Time)
	// logauditoriaDescID is the schema descriptor for id field.
	logauditoriaDescID := logauditoriaMixinFields0[0].Descriptor()
	// logauditoria.DefaultID holds the default value on creation for the id field.
	logauditoria.DefaultID = logauditoriaDescID.Default.(func() uuid.UUID)
	madreMixin := schema.Madre{}.Mixin()
	madreMixinFields0 := madreMixin[0].Fields()
	_ = madreMixinFields0
	madreMixinFields1 := madreMixin[1].Fields()
	_ = madreMixinFields1
	madreFields := schema.Madre{}.Fields()
	_ = madreFields
	// madreDescCreatedAt is the schema descriptor for created_at field.
	madreDescCreatedAt := madreMixinFields1[0].Descriptor()
	// madre.DefaultCreatedAt holds the default value on creation for the created_at field.
	madre.DefaultCreatedAt = madreDescCreatedAt.Default.(func() time.Time)
	// madreDescUpdatedAt is the schema descriptor for updated_at field.
	madreDescUpdatedAt := madreMixinFields1[1].Descriptor()
	// madre.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	madre.DefaultUpdatedAt = madreDescUpdatedAt.Default.(func() time.Time)
	// madre.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	madre.UpdateDefaultUpdatedAt = madreDescUpdatedAt.UpdateDefault.(func() time.Time)
	// madreDescFichaClinicaID is the schema descriptor for ficha_clinica_id field.
	madreDescFichaClinicaID := madreFields[0].Descriptor()
	// madre.FichaClinicaIDValidator is a validator for the "ficha_clinica_id" field. It is called by the builders before save.
	madre.FichaClinicaIDValidator = madreDescFichaClinicaID.Validators[0].(func(string) error)
	// madreDescRutHash is the schema descriptor for rut_hash field.
	madreDescRutHash := madreFields[1].Descriptor()
	// madre.RutHashValidator is a validator for the "rut_hash" field. It is called by the builders before save.
	madre.RutHashValidator = madreDescRutHash.Validators[0].(func(string) error)
	// madreDescNombreHash is the schema descriptor for nombre_hash field.
	madreDescNombreHash := madreFields[3].Descriptor()
	// madre.NombreHashValidator is a validator for the "nombre_hash" field. It is called by the builders before save.
	madre.NombreHashValidator = madreDescNombreHash.Validators[0].(func(string) error)
	// madreDescTelefonoHash is the schema descriptor for telefono_hash field.
	madreDescTelefonoHash := madreFields[5].Descriptor()
	// madre.TelefonoHashValidator is a validator for the "telefono_hash" field. It is called by the builders before save.
	madre.TelefonoHashValidator = madreDescTelefonoHash.Validators[0].(func(string) error)
	// madreDescNacionalidad is the schema descriptor for nacionalidad field.
	madreDescNacionalidad := madreFields[8].Descriptor()
	// madre.DefaultNacionalidad holds the default value on creation for the nacionalidad field.
	madre.DefaultNacionalidad = madreDescNacionalidad.Default.(string)
	// madre.NacionalidadValidator is a validator for the "nacionalidad" field. It is called by the builders before save.
	madre.NacionalidadValidator = madreDescNacionalidad.Validators[0].(func(string) error)
	// madreDescPertenecePuebloOriginario is the schema descriptor for pertenece_pueblo_originario field.
	madreDescPertenecePuebloOriginario := madreFields[9].Descriptor()
	// madre.DefaultPertenecePuebloOriginario holds the default value on creation for the pertenece_pueblo_originario field.
	madre.DefaultPertenecePuebloOriginario = madreDescPertenecePuebloOriginario.Default.(bool)
	// madreDescID is the schema descriptor for id field.
	madreDescID := madreMixinFields0[0].Descriptor()
	// madre.DefaultID holds the default value on creation for the id field.
	madre.DefaultID = madreDescID.Default.(func() uuid.UUID)
	partoMixin := schema.Parto{}.Mixin()
	partoMixinFields0 := partoMixin[0].Fields()
	_ = partoMixinFields0
	partoMixinFields1 := partoMixin[1].Fields()
	_ = partoMixinFields1
	partoFields := schema.Parto{}.Fields()
	_ = partoFields
	// partoDescCreatedAt is the schema descriptor for created_at field.
	partoDescCreatedAt := partoMixinFields1[0].Descriptor()
	// parto.DefaultCreatedAt holds the default value on creation for the created_at field.
	parto.DefaultCreatedAt = partoDescCreatedAt.Default.(func() time.Time)
	// partoDescUpdatedAt is the schema descriptor for updated_at field.
	partoDescUpdatedAt := partoMixinFields1[1].Descriptor()
	// parto.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	parto.DefaultUpdatedAt = partoDescUpdatedAt.Default.(func() time.Time)
	// parto.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	parto.UpdateDefaultUpdatedAt = partoDescUpdatedAt.UpdateDefault.(func() time.Time)
	// partoDescEdadGestacional is the schema descriptor for edad_gestacional field.
	partoDescEdadGestacional := partoFields[2].Descriptor()
	// parto.EdadGestacionalValidator is a validator for the "edad_gestacional" field. It is called by the builders before save.
	parto.EdadGestacionalValidator = func() func(int) error {
		validators := partoDescEdadGestacional.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(edad_gestacional int) error {
			for _, fn := range fns {
				if err := fn(edad_gestacional); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// partoDescID is the schema descriptor for id field.
	partoDescID := partoMixinFields0[0].Descriptor()
	// parto.DefaultID holds the default value on creation for the id field.
	parto.DefaultID = partoDescID.Default.(func() uuid.UUID)
	partodiagnosticoMixin := schema.PartoDiagnostico{}.Mixin()
	partodiagnosticoMixinFields0 := partodiagnosticoMixin[0].Fields()
	_ = partodiagnosticoMixinFields0
	partodiagnosticoMixinFields1 := partodiagnosticoMixin[1].Fields()
	_ = partodiagnosticoMixinFields1
	partodiagnosticoFields := schema.PartoDiagnostico{}.Fields()
	_ = partodiagnosticoFields
	// partodiagnosticoDescCreatedAt is the schema descriptor for created_at field.
	partodiagnosticoDescCreatedAt := partodiagnosticoMixinFields1[0].Descriptor()
	// partodiagnostico.DefaultCreatedAt holds the default value on creation for the created_at field.
	partodiagnostico.DefaultCreatedAt = partodiagnosticoDescCreatedAt.Default.(func() time.Time)
	// partodiagnosticoDescID is the schema descriptor for id field.
	partodiagnosticoDescID := partodiagnosticoMixinFields0[0].Descriptor()
	// partodiagnostico.DefaultID holds the default value on creation for the id field.
	partodiagnostico.DefaultID = partodiagnosticoDescID.Default.(func() uuid.UUID)
	reciennacidoMixin := schema.RecienNacido{}.Mixin()
	reciennacidoMixinFields0 := reciennacidoMixin[0].Fields()
	_ = reciennacidoMixinFields0
	reciennacidoMixinFields1 := reciennacidoMixin[1].Fields()
	_ = reciennacidoMixinFields1
	reciennacidoFields := schema.RecienNacido{}.Fields()
	_ = reciennacidoFields
	// reciennacidoDescCreatedAt is the schema descriptor for created_at field.
	reciennacidoDescCreatedAt := reciennacidoMixinFields1[0].Descriptor()
	// reciennacido.DefaultCreatedAt holds the default value on creation for the created_at field.
	reciennacido.DefaultCreatedAt = reciennacidoDescCreatedAt.Default.(func() time.Time)
	// reciennacidoDescUpdatedAt is the schema descriptor for updated_at field.
	reciennacidoDescUpdatedAt := reciennacidoMixinFields1[1].Descriptor()
	// reciennacido.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reciennacido.DefaultUpdatedAt = reciennacidoDescUpdatedAt.Default.(func() time.Time)
	// reciennacido.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reciennacido.UpdateDefaultUpdatedAt = reciennacidoDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reciennacidoDescRutProvisorio is the schema descriptor for rut_provisorio field.
	reciennacidoDescRutProvisorio := reciennacidoFields[1].Descriptor()
	// reciennacido.RutProvisorioValidator is a validator for the "rut_provisorio" field. It is called by the builders before save.
	reciennacido.RutProvisorioValidator = reciennacidoDescRutProvisorio.Validators[0].(func(string) error)
	// reciennacidoDescPesoGramos is the schema descriptor for peso_gramos field.
	reciennacidoDescPesoGramos := reciennacidoFields[4].Descriptor()
	// reciennacido.PesoGramosValidator is a validator for the "peso_gramos" field. It is called by the builders before save.
	reciennacido.PesoGramosValidator = reciennacidoDescPesoGramos.Validators[0].(func(int) error)
	// reciennacidoDescTallaCm is the schema descriptor for talla_cm field.
	reciennacidoDescTallaCm := reciennacidoFields[5].Descriptor()
	// reciennacido.TallaCmValidator is a validator for the "talla_cm" field. It is called by the builders before save.
	reciennacido.TallaCmValidator = reciennacidoDescTallaCm.Validators[0].(func(float64) error)
	// reciennacidoDescApgar1Min is the schema descriptor for apgar_1_min field.
	reciennacidoDescApgar1Min := reciennacidoFields[6].Descriptor()
	// reciennacido.Apgar1MinValidator is a validator for the "apgar_1_min" field. It is called by the builders before save.
	reciennacido.Apgar1MinValidator = func() func(int) error {
		validators := reciennacidoDescApgar1Min.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(apgar_1_min int) error {
			for _, fn := range fns {
				if err := fn(apgar_1_min); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reciennacidoDescApgar5Min is the schema descriptor for apgar_5_min field.
	reciennacidoDescApgar5Min := reciennacidoFields[7].Descriptor()
	// reciennacido.Apgar5MinValidator is a validator for the "apgar_5_min" field. It is called by the builders before save.
	reciennacido.Apgar5MinValidator = func() func(int) error {
		validators := reciennacidoDescApgar5Min.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(apgar_5_min int) error {
			for _, fn := range fns {
				if err := fn(apgar_5_min); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reciennacidoDescProfilaxisVitK is the schema descriptor for profilaxis_vit_k field.
	reciennacidoDescProfilaxisVitK := reciennacidoFields[8].Descriptor()
	// reciennacido.DefaultProfilaxisVitK holds the default value on creation for the profilaxis_vit_k field.
	reciennacido.DefaultProfilaxisVitK = reciennacidoDescProfilaxisVitK.Default.(bool)
	// reciennacidoDescProfilaxisOftalmica is the schema descriptor for profilaxis_oftalmica field.
	reciennacidoDescProfilaxisOftalmica := reciennacidoFields[9].Descriptor()
	// reciennacido.DefaultProfilaxisOftalmica holds the default value on creation for the profilaxis_oftalmica field.
	reciennacido.DefaultProfilaxisOftalmica = reciennacidoDescProfilaxisOftalmica.Default.(bool)
	// reciennacidoDescID is the schema descriptor for id field.
	reciennacidoDescID := reciennacidoMixinFields0[0].Descriptor()
	// reciennacido.DefaultID holds the default value on creation for the id field.
	reciennacido.DefaultID = reciennacidoDescID.Default.(func() uuid.UUID)
	rolMixin := schema.Rol{}.Mixin()
	rolMixinFields0 := rolMixin[0].Fields()
	_ = rolMixinFields0
	rolMixinFields1 := rolMixin[1].Fields()
	_ = rolMixinFields1
	rolFields := schema.Rol{}.Fields()
	_ = rolFields
	// rolDescCreatedAt is the schema descriptor for created_at field.
	rolDescCreatedAt := rolMixinFields1[0].Descriptor()
	// rol.DefaultCreatedAt holds the default value on creation for the created_at field.
	rol.DefaultCreatedAt = rolDescCreatedAt.Default.(func() time.Time)
	// rolDescUpdatedAt is the schema descriptor for updated_at field.
	rolDescUpdatedAt := rolMixinFields1[1].Descriptor()
	// rol.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	rol.DefaultUpdatedAt = rolDescUpdatedAt.Default.(func() time.Time)
	// rol.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	rol.UpdateDefaultUpdatedAt = rolDescUpdatedAt.UpdateDefault.(func() time.Time)
	// rolDescNombre is the schema descriptor for nombre field.
	rolDescNombre := rolFields[0].Descriptor()
	// rol.NombreValidator is a validator for the "nombre" field. It is called by the builders before save.
	rol.NombreValidator = rolDescNombre.Validators[0].(func(string) error)
	// rolDescID is the schema descriptor for id field.
	rolDescID := rolMixinFields0[0].Descriptor()
	// rol.DefaultID holds the default value on creation for the id field.
	rol.DefaultID = rolDescID.Default.(func() uuid.UUID)
	usuarioMixin := schema.Usuario{}.Mixin()
	usuarioMixinFields0 := usuarioMixin[0].Fields()
	_ = usuarioMixinFields0
	usuarioMixinFields1 := usuarioMixin[1].Fields()
	_ = usuarioMixinFields1
	usuarioFields := schema.Usuario{}.Fields()
	_ = usuarioFields
	// usuarioDescCreatedAt is the schema descriptor for created_at field.
	usuarioDescCreatedAt := usuarioMixinFields1[0].Descriptor()
	// usuario.DefaultCreatedAt holds the default value on creation for the created_at field.
	usuario.DefaultCreatedAt = usuarioDescCreatedAt.Default.(func() time.Time)
	// usuarioDescUpdatedAt is the schema descriptor for updated_at field.
	usuarioDescUpdatedAt := usuarioMixinFields1[1].Descriptor()
	// usuario.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usuario.DefaultUpdatedAt = usuarioDescUpdatedAt.Default.(func() time.Time)
	// usuario.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usuario.UpdateDefaultUpdatedAt = usuarioDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usuarioDescRut is the schema descriptor for rut field.
	usuarioDescRut := usuarioFields[0].Descriptor()
	// usuario.RutValidator is a validator for the "rut" field. It is called by the builders before save.
	usuario.RutValidator = usuarioDescRut.Validators[0].(func(string) error)
	// usuarioDescNombreCompleto is the schema descriptor for nombre_completo field.
	usuarioDescNombreCompleto := usuarioFields[1].Descriptor()
	// usuario.NombreCompletoValidator is a validator for the "nombre_completo" field. It is called by the builders before save.
	usuario.NombreCompletoValidator = usuarioDescNombreCompleto.Validators[0].(func(string) error)
	// usuarioDescEmail is the schema descriptor for email field.
	usuarioDescEmail := usuarioFields[2].Descriptor()
	// usuario.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	usuario.EmailValidator = usuarioDescEmail.Validators[0].(func(string) error)
	// usuarioDescUsername is the schema descriptor for username field.
	usuarioDescUsername := usuarioFields[3].Descriptor()
	// usuario.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	usuario.UsernameValidator = usuarioDescUsername.Validators[0].(func(string) error)
	// usuarioDescPasswordHash is the schema descriptor for password_hash field.
	usuarioDescPasswordHash := usuarioFields[4].Descriptor()
	// usuario.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	usuario.PasswordHashValidator = usuarioDescPasswordHash.Validators[0].(func(string) error)
	// usuarioDescActivo is the schema descriptor for activo field.
	usuarioDescActivo := usuarioFields[6].Descriptor()
	// usuario.DefaultActivo holds the default value on creation for the activo field.
	usuario.DefaultActivo = usuarioDescActivo.Default.(bool)
	// usuarioDescID is the schema descriptor for id field.
	usuarioDescID := usuarioMixinFields0[0].Descriptor()
	// usuario.DefaultID holds the default value on creation for the id field.
	usuario.DefaultID = usuarioDescID.Default.(func() uuid.UUID)
}
