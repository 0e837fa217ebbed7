package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись, страница или набор совпадений пусты.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	// На HTTP-поверхности в неё же сворачиваются все прочие сбои обработки (422).
	ErrValidation = errors.New("validation failed")
)
