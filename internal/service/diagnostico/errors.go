package diagnostico

import "errors"

var (
	ErrDiagnosticoNotFound = errors.New("diagnóstico no encontrado")
	ErrPartoNotFound       = errors.New("parto no encontrado")
	ErrCodigoRegistrado    = errors.New("ya existe un diagnóstico con ese código")
	ErrYaVinculado         = errors.New("el diagnóstico ya está vinculado a este parto")
	ErrVinculoNotFound     = errors.New("el diagnóstico no está vinculado a este parto")
)
