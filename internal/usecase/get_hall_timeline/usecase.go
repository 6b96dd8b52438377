package get_hall_timeline

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	"github.com/m04kA/SMC-BilliardTimeline/internal/timeline"
)

const metricsView = "hall"

// UseCase use case для получения таймлайна всех столов зала на дату
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

// Execute выполняет use case получения таймлайна зала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetHallTimeline: date=%s, personal=%t", req.Date.Format(domain.DateFormat), req.ShowPersonalInfo)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dayStart := timeline.DayStart(req.Date, uc.location)
	resp := &Response{
		DayStart:  dayStart,
		Rows:      []Row{},
		HourMarks: timeline.HourMarks(),
		Now:       timeline.MarkerAt(uc.timeProvider.Now(), dayStart),
	}

	// 2. Получаем активные столы (уже упорядочены по sort_order)
	tables, err := uc.tableRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("GetHallTimeline: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	if len(tables) == 0 {
		uc.logger.Info("GetHallTimeline: no active tables")
		return resp, nil
	}

	tableIDs := make([]int64, len(tables))
	for i, t := range tables {
		tableIDs[i] = t.ID
	}

	// 3. Одним запросом получаем бронирования всех столов за сутки
	bookings, err := uc.bookingRepo.GetByTablesAndPeriod(ctx, domain.BookingsFilter{
		TableIDs:         tableIDs,
		From:             dayStart,
		To:               timeline.NextDayStart(dayStart),
		IncludeCancelled: req.IncludeCancelled,
	})
	if err != nil {
		uc.logger.Error("GetHallTimeline: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Группируем по столам и раскладываем каждую дорожку
	byTable := make(map[int64][]*domain.Booking, len(tables))
	for _, b := range bookings {
		if b == nil {
			continue
		}
		byTable[b.TableID] = append(byTable[b.TableID], b)
	}

	total := 0
	resp.Rows = make([]Row, len(tables))
	for i, t := range tables {
		bars := timeline.Layout(byTable[t.ID], dayStart, req.ShowPersonalInfo)
		resp.Rows[i] = Row{Table: t, Bars: bars}
		total += len(bars)
	}
	uc.metrics.BarsRendered(metricsView, total)

	uc.logger.Info("GetHallTimeline: date=%s, tables=%d, bars=%d",
		dayStart.Format(domain.DateFormat), len(tables), total)

	return resp, nil
}
