package parto

import "errors"

var (
	ErrPartoNotFound        = errors.New("parto no encontrado")
	ErrMadreNotFound        = errors.New("madre no encontrada")
	ErrRecienNacidoNotFound = errors.New("recién nacido no encontrado")
	ErrApgarFueraDeRango    = errors.New("el puntaje Apgar debe estar entre 0 y 10")
	ErrPesoInvalido         = errors.New("el peso debe ser mayor que cero")
	ErrTallaInvalida        = errors.New("la talla debe ser mayor que cero")
)
