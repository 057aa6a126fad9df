package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingArgument = errors.New("faltan argumentos")
	ErrInvalidNumber   = errors.New("número inválido")
	ErrDivisionByZero  = errors.New("división por cero")
)
