package documento

import "errors"

var (
	ErrDocumentoNotFound = errors.New("documento no encontrado")
	ErrObjetoRegistrado  = errors.New("el objeto referenciado ya está registrado")
	ErrObjetoInvalido    = errors.New("identificador de objeto inválido")
	ErrPartoNotFound     = errors.New("parto no encontrado")
)
