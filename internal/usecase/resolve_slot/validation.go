package resolve_slot

import (
	"fmt"
	"math"
)

// validateRequest валидирует входные данные запроса
// Позиция клика за пределами дорожки не ошибка - она прижимается к краю
func validateRequest(req *Request) error {
	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if math.IsNaN(req.TrackWidth) || math.IsInf(req.TrackWidth, 0) || req.TrackWidth <= 0 {
		return fmt.Errorf("%w: trackWidth must be a positive number", ErrInvalidInput)
	}

	if math.IsNaN(req.PixelX) {
		return fmt.Errorf("%w: pixelX is not a number", ErrInvalidInput)
	}

	return nil
}
