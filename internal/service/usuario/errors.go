package usuario

import "errors"

var (
	ErrRolRegistrado   = errors.New("ya existe un rol con ese nombre")
	ErrRolNotFound     = errors.New("rol no encontrado")
	ErrUsuarioNotFound = errors.New("usuario no encontrado")
	ErrUsernameEnUso   = errors.New("el nombre de usuario ya está en uso")
	ErrEmailRegistrado = errors.New("el email ya está registrado")
	ErrRutRegistrado   = errors.New("el RUT ya está registrado")
	ErrRutInvalido     = errors.New("el RUT no tiene un formato válido")
)
