package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	"github.com/m04kA/SMC-BilliardTimeline/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"table_id",
	"start_time",
	"end_time",
	"status",
	"is_guest",
	"COALESCE(customer_name, '')",
	"guest_name",
	"guest_phone",
	"price",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения бронирований столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTablesAndPeriod получает бронирования столов, пересекающиеся с периодом [From, To)
//
// Пересечение строгое: бронирование, которое заканчивается ровно в From
// или начинается ровно в To, в выборку не попадает.
// Сортировка: по столу, затем по времени начала.
func (r *Repository) GetByTablesAndPeriod(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if len(filter.TableIDs) == 0 {
		return []*domain.Booking{}, nil
	}
	if !filter.From.Before(filter.To) {
		return nil, fmt.Errorf("%w: GetByTablesAndPeriod - empty period %s..%s",
			ErrInvalidFilter, filter.From, filter.To)
	}

	query, args, err := buildPeriodQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTablesAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTablesAndPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

func buildPeriodQuery(filter domain.BookingsFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"table_id": filter.TableIDs}).
		Where(squirrel.Lt{"start_time": filter.To}).
		Where(squirrel.Gt{"end_time": filter.From})

	// Отмененные бронирования стол не занимают, по умолчанию их не показываем
	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	return selectBuilder.OrderBy("table_id ASC", "start_time ASC", "id ASC")
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.TableID,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.IsGuest,
			&booking.CustomerName,
			&booking.GuestName,
			&booking.GuestPhone,
			&booking.Price,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
