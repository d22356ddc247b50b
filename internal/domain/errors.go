package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrCategoryNotFound   = errors.New("categoría no encontrada")
)

// Errores del libro de movimientos de stock.
var (
	ErrInvalidQuantity   = errors.New("la cantidad debe ser un entero mayor que cero")
	ErrInvalidDirection  = errors.New("el tipo debe ser \"entrada\" o \"salida\"")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrActorNotFound     = errors.New("usuario que registra el movimiento no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente para la salida")
)

// Errores de almacenamiento. Son transitorios: no se persistió ningún efecto parcial
// y la operación completa puede reintentarse.
var (
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
	ErrTransactionAborted = errors.New("transacción abortada")
)

// IsRetryable indica si err proviene de un fallo transitorio de almacenamiento.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable) || errors.Is(err, ErrTransactionAborted)
}
