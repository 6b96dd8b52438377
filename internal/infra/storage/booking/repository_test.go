package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
)

var rowColumns = []string{
	"id", "table_id", "start_time", "end_time", "status", "is_guest", "customer_name",
	"guest_name", "guest_phone", "price", "created_at", "updated_at",
}

func dayFilter(includeCancelled bool, tableIDs ...int64) domain.BookingsFilter {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.BookingsFilter{
		TableIDs:         tableIDs,
		From:             from,
		To:               from.AddDate(0, 0, 1),
		IncludeCancelled: includeCancelled,
	}
}

func TestBuildPeriodQuery(t *testing.T) {
	query, args, err := buildPeriodQuery(dayFilter(false, 1, 2)).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM bookings")
	assert.Contains(t, query, "table_id IN ($1,$2)")
	assert.Contains(t, query, "start_time < $3")
	assert.Contains(t, query, "end_time > $4")
	assert.Contains(t, query, "status <> $5")
	assert.Contains(t, query, "ORDER BY table_id ASC, start_time ASC, id ASC")
	assert.Len(t, args, 5)

	query, args, err = buildPeriodQuery(dayFilter(true, 1)).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "status <>")
	assert.Len(t, args, 3)
}

func TestRepository_GetByTablesAndPeriod(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	filter := dayFilter(false, 3)
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	guestName := "Пётр"

	rows := sqlmock.NewRows(rowColumns).
		AddRow(10, 3, start, start.Add(2*time.Hour), "CONFIRMED", false, "Иван", nil, nil, 800.0, start, start).
		AddRow(11, 3, start.Add(3*time.Hour), start.Add(4*time.Hour), "PENDING", true, "", guestName, "+7999", 400.0, nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE").
		WithArgs(int64(3), filter.To, filter.From, "CANCELLED").
		WillReturnRows(rows)

	repo := NewRepository(db)
	bookings, err := repo.GetByTablesAndPeriod(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, int64(10), bookings[0].ID)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	assert.Equal(t, "Иван", bookings[0].CustomerName)
	assert.Nil(t, bookings[0].GuestName)
	assert.Equal(t, start, bookings[0].CreatedAt)

	assert.True(t, bookings[1].IsGuest)
	require.NotNil(t, bookings[1].GuestName)
	assert.Equal(t, guestName, *bookings[1].GuestName)
	assert.True(t, bookings[1].CreatedAt.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByTablesAndPeriod_NoTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	bookings, err := NewRepository(db).GetByTablesAndPeriod(context.Background(), dayFilter(false))
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByTablesAndPeriod_Errors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	empty := dayFilter(false, 1)
	empty.To = empty.From
	_, err = repo.GetByTablesAndPeriod(context.Background(), empty)
	assert.ErrorIs(t, err, ErrInvalidFilter)

	mock.ExpectQuery("SELECT (.+) FROM bookings").WillReturnError(errors.New("connection reset"))
	_, err = repo.GetByTablesAndPeriod(context.Background(), dayFilter(false, 1))
	assert.ErrorIs(t, err, ErrExecQuery)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	_, err = repo.GetByTablesAndPeriod(context.Background(), dayFilter(false, 1))
	assert.ErrorIs(t, err, ErrScanRow)

	assert.NoError(t, mock.ExpectationsWereMet())
}
