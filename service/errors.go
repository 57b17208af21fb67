package service

import "errors"

// Failure categories surfaced by the label pipeline. Controllers map these
// to HTTP statuses; everything else is treated as an internal error.
var (
	// ErrMissingInput means a required request field is absent
	ErrMissingInput = errors.New("не полные необходимые данные")

	// ErrUnsupportedBrand means no label template exists for the brand
	ErrUnsupportedBrand = errors.New("бренд не поддерживается")

	// ErrTokenNotFound means no marketplace token is registered for the
	// brand/platform/category combination
	ErrTokenNotFound = errors.New("ошибка получения токена по API")

	// ErrNoCards means the marketplace returned no cards
	ErrNoCards = errors.New("ошибка получения данных моделей")

	// ErrNoMatches means filtering left nothing to render
	ErrNoMatches = errors.New("нет моделей, совпадающих с данными маркетплейса")
)
