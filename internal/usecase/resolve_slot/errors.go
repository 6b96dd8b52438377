package resolve_slot

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("table not found")

	// ErrTableInactive возвращается, когда стол выведен из бронирования
	ErrTableInactive = errors.New("table is not available for booking")

	// ErrSlotNotRepresentable возвращается, когда клик не попадает ни в один слот суток
	// (округление после 23:45 переносит на 24:00)
	ErrSlotNotRepresentable = errors.New("slot is not representable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
