package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers los mapean a HTTP.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEntityInactive     = errors.New("entidad no encontrada o inactiva")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrEmailInUse         = errors.New("el email ya está en uso por otro usuario")
	ErrNoDefaultEntity    = errors.New("no hay entidad disponible para el registro")
	ErrNoFieldsToUpdate   = errors.New("no hay campos para actualizar")
	ErrEntityImmutable    = errors.New("la entidad de un usuario no puede reasignarse")
	ErrInvalidResetToken  = errors.New("token de reset inválido, usado o expirado")
	ErrStoreNameTaken     = errors.New("el nombre de la tienda debe ser único dentro de la entidad")
	ErrSellerEmailTaken   = errors.New("el email del vendedor debe ser único")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrForbidden          = errors.New("acceso denegado")
)
