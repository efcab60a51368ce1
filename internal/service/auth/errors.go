package auth

import "errors"

var (
	ErrCredencialesInvalidas    = errors.New("usuario o contraseña incorrectos")
	ErrCuentaInactiva           = errors.New("la cuenta está desactivada")
	ErrCuentaBloqueada          = errors.New("cuenta bloqueada temporalmente por intentos fallidos")
	ErrSessionNotFound          = errors.New("sesión no encontrada o expirada")
	ErrInvalidToken             = errors.New("token inválido o expirado")
	ErrPasswordActualIncorrecta = errors.New("la contraseña actual es incorrecta")
	ErrPasswordMuyCorta         = errors.New("la contraseña debe tener al menos 8 caracteres")
)
