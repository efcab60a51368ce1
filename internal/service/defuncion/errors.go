package defuncion

import "errors"

var (
	ErrDefuncionNotFound    = errors.New("defunción no encontrada")
	ErrSujetoInvalido       = errors.New("la defunción debe referir exactamente a una madre o a un recién nacido")
	ErrDefuncionRegistrada  = errors.New("el sujeto ya tiene una defunción registrada")
	ErrMadreNotFound        = errors.New("madre no encontrada")
	ErrRecienNacidoNotFound = errors.New("recién nacido no encontrado")
	ErrCausaNotFound        = errors.New("diagnóstico de causa de defunción no encontrado")
)
