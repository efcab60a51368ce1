// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DefuncionsColumns holds the columns for the "defuncions" table.
	DefuncionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "fecha_defuncion", Type: field.TypeTime},
		{Name: "causa_defuncion_id", Type: field.TypeUUID},
		{Name: "madre_id", Type: field.TypeUUID, Unique: true, Nullable: true},
		{Name: "recien_nacido_id", Type: field.TypeUUID, Unique: true, Nullable: true},
		{Name: "usuario_registro_id", Type: field.TypeUUID, Nullable: true},
	}
	// DefuncionsTable holds the schema information for the "defuncions" table.
	DefuncionsTable = &schema.Table{
		Name:       "defuncions",
		Columns:    DefuncionsColumns,
		PrimaryKey: []*schema.Column{DefuncionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "defuncions_diagnostico_cie10s_defunciones",
				Columns:    []*schema.Column{DefuncionsColumns[4]},
				RefColumns: []*schema.Column{DiagnosticoCie10sColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "defuncions_madres_defuncion",
				Columns:    []*schema.Column{DefuncionsColumns[5]},
				RefColumns: []*schema.Column{MadresColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "defuncions_recien_nacidos_defuncion",
				Columns:    []*schema.Column{DefuncionsColumns[6]},
				RefColumns: []*schema.Column{RecienNacidosColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "defuncions_usuarios_defunciones_registradas",
				Columns:    []*schema.Column{DefuncionsColumns[7]},
				RefColumns: []*schema.Column{UsuariosColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "defuncion_madre_id",
				Unique:  true,
				Columns: []*schema.Column{DefuncionsColumns[5]},
			},
			{
				Name:    "defuncion_recien_nacido_id",
				Unique:  true,
				Columns: []*schema.Column{DefuncionsColumns[6]},
			},
		},
	}
	// DiagnosticoCie10sColumns holds the columns for the "diagnostico_cie10s" table.
	DiagnosticoCie10sColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "codigo", Type: field.TypeString, Unique: true, Size: 10},
		{Name: "descripcion", Type: field.TypeString, Size: 2147483647},
	}
	// DiagnosticoCie10sTable holds the schema information for the "diagnostico_cie10s" table.
	DiagnosticoCie10sTable = &schema.Table{
		Name:       "diagnostico_cie10s",
		Columns:    DiagnosticoCie10sColumns,
		PrimaryKey: []*schema.Column{DiagnosticoCie10sColumns[0]},
	}
	// DocumentoReferenciaColumns holds the columns for the "documento_referencia" table.
	DocumentoReferenciaColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "mongodb_object_id", Type: field.TypeString, Unique: true, Size: 24},
		{Name: "nombre_archivo", Type: field.TypeString, Size: 255},
		{Name: "tipo_documento", Type: field.TypeEnum, Enums: []string{"EPICRISIS_PDF", "REPORTE_EXCEL", "OTRO"}, Default: "OTRO"},
		{Name: "parto_id", Type: field.TypeUUID},
		{Name: "usuario_generacion_id", Type: field.TypeUUID, Nullable: true},
	}
	// DocumentoReferenciaTable holds the schema information for the "documento_referencia" table.
	DocumentoReferenciaTable = &schema.Table{
		Name:       "documento_referencia",
		Columns:    DocumentoReferenciaColumns,
		PrimaryKey: []*schema.Column{DocumentoReferenciaColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documento_referencia_partos_documentos",
				Columns:    []*schema.Column{DocumentoReferenciaColumns[5]},
				RefColumns: []*schema.Column{PartosColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "documento_referencia_usuarios_documentos_generados",
				Columns:    []*schema.Column{DocumentoReferenciaColumns[6]},
				RefColumns: []*schema.Column{UsuariosColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentoreferencia_parto_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentoReferenciaColumns[5]},
			},
		},
	}
	// LogAuditoriaColumns holds the columns for the "log_auditoria" table.
	LogAuditoriaColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "accion", Type: field.TypeString, Size: 100},
		{Name: "tabla_afectada", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "registro_id", Type: field.TypeUUID, Nullable: true},
		{Name: "detalles", Type: field.TypeJSON, Nullable: true},
		{Name: "ip_usuario", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "fecha_accion", Type: field.TypeTime},
		{Name: "usuario_id", Type: field.TypeUUID, Nullable: true},
	}
	// LogAuditoriaTable holds the schema information for the "log_auditoria" table.
	LogAuditoriaTable = &schema.Table{
		Name:       "log_auditoria",
		Columns:    LogAuditoriaColumns,
		PrimaryKey: []*schema.Column{LogAuditoriaColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "log_auditoria_usuarios_registros_auditoria",
				Columns:    []*schema.Column{LogAuditoriaColumns[7]},
				RefColumns: []*schema.Column{UsuariosColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "logauditoria_usuario_id",
				Unique:  false,
				Columns: []*schema.Column{LogAuditoriaColumns[7]},
			},
			{
				Name:    "logauditoria_tabla_afectada",
				Unique:  false,
				Columns: []*schema.Column{LogAuditoriaColumns[2]},
			},
			{
				Name:    "logauditoria_fecha_accion",
				Unique:  false,
				Columns: []*schema.Column{LogAuditoriaColumns[6]},
			},
		},
	}
	// MadresColumns holds the columns for the "madres" table.
	MadresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "ficha_clinica_id", Type: field.TypeString, Unique: true, Nullable: true, Size: 20},
		{Name: "rut_hash", Type: field.TypeString, Unique: true, Nullable: true, Size: 64},
		{Name: "rut_encrypted", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "nombre_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "nombre_encrypted", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "telefono_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "telefono_encrypted", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "fecha_nacimiento", Type: field.TypeTime},
		{Name: "nacionalidad", Type: field.TypeString, Size: 100, Default: "Chilena"},
		{Name: "pertenece_pueblo_originario", Type: field.TypeBool, Default: false},
		{Name: "prevision", Type: field.TypeEnum, Enums: []string{"FONASA", "ISAPRE", "PARTICULAR", "NINGUNA"}, Default: "FONASA"},
		{Name: "antecedentes_medicos", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// MadresTable holds the schema information for the "madres" table.
	MadresTable = &schema.Table{
		Name:       "madres",
		Columns:    MadresColumns,
		PrimaryKey: []*schema.Column{MadresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "madre_nombre_hash",
				Unique:  false,
				Columns: []*schema.Column{MadresColumns[6]},
			},
			{
				Name:    "madre_telefono_hash",
				Unique:  false,
				Columns: []*schema.Column{MadresColumns[8]},
			},
		},
	}
	// PartosColumns holds the columns for the "partos" table.
	PartosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "fecha_parto", Type: field.TypeTime},
		{Name: "edad_gestacional", Type: field.TypeInt, Nullable: true},
		{Name: "tipo_parto", Type: field.TypeEnum, Enums: []string{"Eutócico", "Cesárea Electiva", "Cesárea Urgencia", "Fórceps", "Vacuum"}},
		{Name: "anestesia", Type: field.TypeEnum, Enums: []string{"Epidural", "Raquídea", "General", "Otra", "Ninguna"}, Default: "Ninguna"},
		{Name: "partograma_data", Type: field.TypeJSON, Nullable: true},
		{Name: "epicrisis_data", Type: field.TypeJSON, Nullable: true},
		{Name: "madre_id", Type: field.TypeUUID},
		{Name: "usuario_registro_id", Type: field.TypeUUID, Nullable: true},
	}
	// PartosTable holds the schema information for the "partos" table.
	PartosTable = &schema.Table{
		Name:       "partos",
		Columns:    PartosColumns,
		PrimaryKey: []*schema.Column{PartosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "partos_madres_partos",
				Columns:    []*schema.Column{PartosColumns[9]},
				RefColumns: []*schema.Column{MadresColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "partos_usuarios_partos_registrados",
				Columns:    []*schema.Column{PartosColumns[10]},
				RefColumns: []*schema.Column{UsuariosColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parto_madre_id",
				Unique:  false,
				Columns: []*schema.Column{PartosColumns[9]},
			},
			{
				Name:    "parto_fecha_parto",
				Unique:  false,
				Columns: []*schema.Column{PartosColumns[3]},
			},
		},
	}
	// PartoDiagnosticosColumns holds the columns for the "parto_diagnosticos" table.
	PartoDiagnosticosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "diagnostico_id", Type: field.TypeUUID},
		{Name: "parto_id", Type: field.TypeUUID},
	}
	// PartoDiagnosticosTable holds the schema information for the "parto_diagnosticos" table.
	PartoDiagnosticosTable = &schema.Table{
		Name:       "parto_diagnosticos",
		Columns:    PartoDiagnosticosColumns,
		PrimaryKey: []*schema.Column{PartoDiagnosticosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parto_diagnosticos_diagnostico_cie10s_parto_diagnosticos",
				Columns:    []*schema.Column{PartoDiagnosticosColumns[2]},
				RefColumns: []*schema.Column{DiagnosticoCie10sColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "parto_diagnosticos_partos_parto_diagnosticos",
				Columns:    []*schema.Column{PartoDiagnosticosColumns[3]},
				RefColumns: []*schema.Column{PartosColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "partodiagnostico_parto_id_diagnostico_id",
				Unique:  true,
				Columns: []*schema.Column{PartoDiagnosticosColumns[3], PartoDiagnosticosColumns[2]},
			},
			{
				Name:    "partodiagnostico_diagnostico_id",
				Unique:  false,
				Columns: []*schema.Column{PartoDiagnosticosColumns[2]},
			},
		},
	}
	// RecienNacidosColumns holds the columns for the "recien_nacidos" table.
	RecienNacidosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "rut_provisorio", Type: field.TypeString, Nullable: true, Size: 12},
		{Name: "estado_al_nacer", Type: field.TypeEnum, Enums: []string{"Vivo", "Nacido Muerto"}},
		{Name: "sexo", Type: field.TypeEnum, Nullable: true, Enums: []string{"Masculino", "Femenino", "Indeterminado"}},
		{Name: "peso_gramos", Type: field.TypeInt, Nullable: true},
		{Name: "talla_cm", Type: field.TypeFloat64, Nullable: true},
		{Name: "apgar_1_min", Type: field.TypeInt, Nullable: true},
		{Name: "apgar_5_min", Type: field.TypeInt, Nullable: true},
		{Name: "profilaxis_vit_k", Type: field.TypeBool, Default: false},
		{Name: "profilaxis_oftalmica", Type: field.TypeBool, Default: false},
		{Name: "parto_id", Type: field.TypeUUID},
		{Name: "usuario_registro_id", Type: field.TypeUUID, Nullable: true},
	}
	// RecienNacidosTable holds the schema information for the "recien_nacidos" table.
	RecienNacidosTable = &schema.Table{
		Name:       "recien_nacidos",
		Columns:    RecienNacidosColumns,
		PrimaryKey: []*schema.Column{RecienNacidosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recien_nacidos_partos_recien_nacidos",
				Columns:    []*schema.Column{RecienNacidosColumns[12]},
				RefColumns: []*schema.Column{PartosColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "recien_nacidos_usuarios_recien_nacidos_registrados",
				Columns:    []*schema.Column{RecienNacidosColumns[13]},
				RefColumns: []*schema.Column{UsuariosColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reciennacido_parto_id",
				Unique:  false,
				Columns: []*schema.Column{RecienNacidosColumns[12]},
			},
		},
	}
	// RolsColumns holds the columns for the "rols" table.
	RolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "nombre", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "descripcion", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// RolsTable holds the schema information for the "rols" table.
	RolsTable = &schema.Table{
		Name:       "rols",
		Columns:    RolsColumns,
		PrimaryKey: []*schema.Column{RolsColumns[0]},
	}
	// UsuariosColumns holds the columns for the "usuarios" table.
	UsuariosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "rut", Type: field.TypeString, Unique: true, Size: 12},
		{Name: "nombre_completo", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "password_hash", Type: field.TypeString, Size: 255},
		{Name: "activo", Type: field.TypeBool, Default: true},
		{Name: "rol_id", Type: field.TypeUUID},
	}
	// UsuariosTable holds the schema information for the "usuarios" table.
	UsuariosTable = &schema.Table{
		Name:       "usuarios",
		Columns:    UsuariosColumns,
		PrimaryKey: []*schema.Column{UsuariosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "usuarios_rols_usuarios",
				Columns:    []*schema.Column{UsuariosColumns[9]},
				RefColumns: []*schema.Column{RolsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usuario_rol_id",
				Unique:  false,
				Columns: []*schema.Column{UsuariosColumns[9]},
			},
			{
				Name:    "usuario_activo",
				Unique:  false,
				Columns: []*schema.Column{UsuariosColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DefuncionsTable,
		DiagnosticoCie10sTable,
		DocumentoReferenciaTable,
		LogAuditoriaTable,
		MadresTable,
		PartosTable,
		PartoDiagnosticosTable,
		RecienNacidosTable,
		RolsTable,
		UsuariosTable,
	}
)

func init() {
	DefuncionsTable.ForeignKeys[0].RefTable = DiagnosticoCie10sTable
	DefuncionsTable.ForeignKeys[1].RefTable = MadresTable
	DefuncionsTable.ForeignKeys[2].RefTable = RecienNacidosTable
	DefuncionsTable.ForeignKeys[3].RefTable = UsuariosTable
	DefuncionsTable.Annotation = &entsql.Annotation{}
	DefuncionsTable.Annotation.Checks = map[string]string{
		"defuncion_sujeto_xor": "((madre_id IS NULL) != (recien_nacido_id IS NULL))",
	}
	DocumentoReferenciaTable.ForeignKeys[0].RefTable = PartosTable
	DocumentoReferenciaTable.ForeignKeys[1].RefTable = UsuariosTable
	LogAuditoriaTable.ForeignKeys[0].RefTable = UsuariosTable
	PartosTable.ForeignKeys[0].RefTable = MadresTable
	PartosTable.ForeignKeys[1].RefTable = UsuariosTable
	PartoDiagnosticosTable.ForeignKeys[0].RefTable = DiagnosticoCie10sTable
	PartoDiagnosticosTable.ForeignKeys[1].RefTable = PartosTable
	RecienNacidosTable.ForeignKeys[0].RefTable = PartosTable
	RecienNacidosTable.ForeignKeys[1].RefTable = UsuariosTable
	UsuariosTable.ForeignKeys[0].RefTable = RolsTable
}
