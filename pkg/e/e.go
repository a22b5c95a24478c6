package e

import "fmt"

var (
	// Внутренние ошибки
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// Ошибки outbox
	ErrOutboxFull   = fmt.Errorf("outbox queue is full")
	ErrOutboxClosed = fmt.Errorf("outbox is closed")

	// Ошибки кэша
	ErrUnexpectedCacheValue = fmt.Errorf("unexpected cache value type")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrInvalidNumber       = fmt.Errorf("invalid number")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrNotInteger          = fmt.Errorf("value must be an integer")
	ErrInvalidDiscountType = fmt.Errorf("discount type must be amount or percentage")
	ErrInvalidIndex        = fmt.Errorf("invalid discount index")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
