package resolve_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	tableRepo "github.com/m04kA/SMC-BilliardTimeline/internal/infra/storage/table"
	"github.com/m04kA/SMC-BilliardTimeline/internal/timeline"
	"github.com/m04kA/SMC-BilliardTimeline/pkg/types"
)

// UseCase use case для выбора слота кликом по дорожке стола
type UseCase struct {
	tableRepo TableRepository
	metrics   MetricsRecorder
	location  *time.Location
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(tableRepo TableRepository, metrics MetricsRecorder, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		tableRepo: tableRepo,
		metrics:   metrics,
		location:  location,
		logger:    logger,
	}
}

// Execute выполняет use case выбора слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveSlot: table=%d, date=%s, x=%.2f, width=%.2f",
		req.TableID, req.Date.Format(domain.DateFormat), req.PixelX, req.TrackWidth)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем стол и проверяем, что на него можно бронировать
	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("ResolveSlot: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("ResolveSlot: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	if !table.CanBeBooked() {
		uc.logger.Warn("ResolveSlot: table id=%d is inactive", table.ID)
		return nil, ErrTableInactive
	}

	// 3. Переводим клик в слот; обработчик вызывается только для принятого слота
	var (
		selected domain.Slot
		accepted bool
	)
	track := timeline.Track{TableID: table.ID, WidthPixels: req.TrackWidth}
	track.Click(req.PixelX, func(_ int64, slot domain.Slot) {
		selected = slot
		accepted = true
	})
	uc.metrics.SlotResolved(accepted)

	if !accepted {
		uc.logger.Info("ResolveSlot: click ignored, table=%d, x=%.2f, width=%.2f",
			table.ID, req.PixelX, req.TrackWidth)
		return nil, ErrSlotNotRepresentable
	}

	// 4. Формируем черновик бронирования
	startTime, err := types.FromHourMinute(selected.Hour, selected.Minute)
	if err != nil {
		uc.logger.Error("ResolveSlot: failed to format slot %d:%d: %v", selected.Hour, selected.Minute, err)
		return nil, fmt.Errorf("%w: failed to format slot: %v", ErrInternal, err)
	}

	dayStart := timeline.DayStart(req.Date, uc.location)
	startsAt := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(),
		selected.Hour, selected.Minute, 0, 0, dayStart.Location())

	uc.logger.Info("ResolveSlot: table=%d, date=%s, slot=%s",
		table.ID, dayStart.Format(domain.DateFormat), startTime)

	return &Response{
		TableID:     table.ID,
		TableName:   table.Name,
		HourlyPrice: table.HourlyPrice,
		Date:        dayStart,
		Slot:        selected,
		StartTime:   startTime,
		StartsAt:    startsAt,
	}, nil
}
