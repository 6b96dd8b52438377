package get_table_timeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	tableRepo "github.com/m04kA/SMC-BilliardTimeline/internal/infra/storage/table"
	"github.com/m04kA/SMC-BilliardTimeline/internal/timeline"
)

const metricsView = "table"

// UseCase use case для получения таймлайна одного стола на дату
type UseCase struct {
	tableRepo    TableRepository
	bookingRepo  BookingRepository
	metrics      MetricsRecorder
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tableRepo TableRepository,
	bookingRepo BookingRepository,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		tableRepo:    tableRepo,
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения таймлайна стола
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTableTimeline: table=%d, date=%s, personal=%t",
		req.TableID, req.Date.Format(domain.DateFormat), req.ShowPersonalInfo)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTableTimeline: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем стол
	table, err := uc.tableRepo.GetByID(ctx, req.TableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("GetTableTimeline: table id=%d not found", req.TableID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("GetTableTimeline: failed to get table id=%d: %v", req.TableID, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}

	// 3. Границы суток в часовом поясе зала
	dayStart := timeline.DayStart(req.Date, uc.location)

	// 4. Получаем бронирования, пересекающиеся с сутками
	bookings, err := uc.bookingRepo.GetByTablesAndPeriod(ctx, domain.BookingsFilter{
		TableIDs:         []int64{table.ID},
		From:             dayStart,
		To:               timeline.NextDayStart(dayStart),
		IncludeCancelled: req.IncludeCancelled,
	})
	if err != nil {
		uc.logger.Error("GetTableTimeline: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Раскладываем бронирования по дорожке
	bars := timeline.Layout(bookings, dayStart, req.ShowPersonalInfo)
	uc.metrics.BarsRendered(metricsView, len(bars))

	uc.logger.Info("GetTableTimeline: table=%d, date=%s, bars=%d",
		table.ID, dayStart.Format(domain.DateFormat), len(bars))

	return &Response{
		Table:     table,
		DayStart:  dayStart,
		Bars:      bars,
		HourMarks: timeline.HourMarks(),
		Now:       timeline.MarkerAt(uc.timeProvider.Now(), dayStart),
	}, nil
}
