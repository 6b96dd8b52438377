package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
)

const keyPrefix = "timeline:bookings:v1"

// Repository кэширующая обертка над источником бронирований
//
// Кэш read-through с коротким TTL: таймлайн опрашивается часто, а бронирования
// меняются внешним API, поэтому явная инвалидация не делается.
// Недоступность Redis не ломает чтение - запрос уходит в источник.
type Repository struct {
	source   Source
	client   Client
	ttl      time.Duration
	recorder Recorder
	logger   Logger
}

// NewRepository создает кэширующий репозиторий
func NewRepository(source Source, client Client, ttl time.Duration, recorder Recorder, logger Logger) *Repository {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Repository{
		source:   source,
		client:   client,
		ttl:      ttl,
		recorder: recorder,
		logger:   logger,
	}
}

// GetByTablesAndPeriod возвращает бронирования из кэша или из источника
func (r *Repository) GetByTablesAndPeriod(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	key := cacheKey(filter)

	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		bookings, decodeErr := decode(data)
		if decodeErr == nil {
			r.recorder.CacheLookup(true)
			return bookings, nil
		}
		r.logger.Warn("BookingsCache: broken entry key=%s: %v", key, decodeErr)
	case errors.Is(err, redis.Nil):
		// промах
	default:
		r.logger.Warn("BookingsCache: get key=%s failed: %v", key, err)
	}
	r.recorder.CacheLookup(false)

	bookings, err := r.source.GetByTablesAndPeriod(ctx, filter)
	if err != nil {
		return nil, err
	}

	payload, err := encode(bookings)
	if err != nil {
		r.logger.Error("BookingsCache: encode key=%s: %v", key, err)
		return bookings, nil
	}

	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.logger.Warn("BookingsCache: set key=%s failed: %v", key, err)
	}

	return bookings, nil
}

// cacheKey ключ не зависит от порядка ID столов в фильтре
func cacheKey(filter domain.BookingsFilter) string {
	ids := make([]int64, len(filter.TableIDs))
	copy(ids, filter.TableIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	scope := "active"
	if filter.IncludeCancelled {
		scope = "all"
	}

	return fmt.Sprintf("%s:%s:%d:%d:%s",
		keyPrefix, strings.Join(parts, ","), filter.From.Unix(), filter.To.Unix(), scope)
}

type cachedBooking struct {
	ID           int64     `json:"id"`
	TableID      int64     `json:"tableId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
	IsGuest      bool      `json:"isGuest"`
	CustomerName string    `json:"customerName,omitempty"`
	GuestName    *string   `json:"guestName,omitempty"`
	GuestPhone   *string   `json:"guestPhone,omitempty"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func encode(bookings []*domain.Booking) ([]byte, error) {
	items := make([]cachedBooking, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, cachedBooking{
			ID:           b.ID,
			TableID:      b.TableID,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
			Status:       string(b.Status),
			IsGuest:      b.IsGuest,
			CustomerName: b.CustomerName,
			GuestName:    b.GuestName,
			GuestPhone:   b.GuestPhone,
			Price:        b.Price,
			CreatedAt:    b.CreatedAt,
			UpdatedAt:    b.UpdatedAt,
		})
	}
	return json.Marshal(items)
}

func decode(data []byte) ([]*domain.Booking, error) {
	var items []cachedBooking
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, len(items))
	for i, item := range items {
		// неизвестный статус отдаем как есть, таймлайн рисует его нейтральным стилем
		if item.Status == "" {
			return nil, fmt.Errorf("empty status of booking id=%d", item.ID)
		}
		bookings[i] = &domain.Booking{
			ID:           item.ID,
			TableID:      item.TableID,
			StartTime:    item.StartTime,
			EndTime:      item.EndTime,
			Status:       domain.BookingStatus(item.Status),
			IsGuest:      item.IsGuest,
			CustomerName: item.CustomerName,
			GuestName:    item.GuestName,
			GuestPhone:   item.GuestPhone,
			Price:        item.Price,
			CreatedAt:    item.CreatedAt,
			UpdatedAt:    item.UpdatedAt,
		}
	}
	return bookings, nil
}

type noopRecorder struct{}

func (noopRecorder) CacheLookup(bool) {}
