package madre

import "errors"

var (
	ErrMadreNotFound    = errors.New("madre no encontrada")
	ErrFichaRegistrada  = errors.New("ya existe una madre con esa ficha clínica")
	ErrRutRegistrado    = errors.New("ya existe una madre con ese RUT")
	ErrRutInvalido      = errors.New("el RUT no tiene un formato válido")
	ErrTelefonoInvalido = errors.New("el teléfono no es un número chileno válido")
)
