package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BilliardTimeline/internal/domain"
	"github.com/m04kA/SMC-BilliardTimeline/internal/timeline"
)

// Модели таймлайна, общие для ответов по одному столу и по всему залу

// TableResponse стол (дорожка таймлайна)
type TableResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	HourlyPrice float64 `json:"hourlyPrice"`
	IsActive    bool    `json:"isActive"`
}

// BarResponse полоса бронирования на дорожке
type BarResponse struct {
	BookingID       int64           `json:"bookingId"`
	TableID         int64           `json:"tableId"`
	Status          string          `json:"status"`
	LeftPercent     float64         `json:"leftPercent"`
	WidthPercent    float64         `json:"widthPercent"`
	StartTime       string          `json:"startTime"`
	EndTime         string          `json:"endTime"`
	ContinuesBefore bool            `json:"continuesBefore"`
	ContinuesAfter  bool            `json:"continuesAfter"`
	Style           StyleResponse   `json:"style"`
	Caption         CaptionResponse `json:"caption"`
}

type StyleResponse struct {
	Color      string `json:"color"`
	Background string `json:"background"`
	Label      string `json:"label"`
}

// CaptionResponse подпись полосы; персональные поля есть только в ответах для персонала
type CaptionResponse struct {
	Title     string   `json:"title"`
	TimeRange string   `json:"timeRange"`
	IsGuest   *bool    `json:"isGuest,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Price     *float64 `json:"price,omitempty"`
}

// LegendItemResponse статус и его оформление
type LegendItemResponse struct {
	Status string        `json:"status"`
	Style  StyleResponse `json:"style"`
}

type HourMarkResponse struct {
	Hour        int     `json:"hour"`
	Label       string  `json:"label"`
	LeftPercent float64 `json:"leftPercent"`
}

// NowMarkerResponse маркер текущего времени; percent отсутствует, если отображается другая дата
type NowMarkerResponse struct {
	At      string   `json:"at"`
	Visible bool     `json:"visible"`
	Percent *float64 `json:"percent,omitempty"`
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(domain.DateFormat, strings.TrimSpace(raw))
}

func FromTable(t *domain.Table) TableResponse {
	return TableResponse{
		ID:          t.ID,
		Name:        t.Name,
		Kind:        string(t.Kind),
		HourlyPrice: t.HourlyPrice,
		IsActive:    t.IsActive,
	}
}

func FromBars(bars []timeline.Bar) []BarResponse {
	result := make([]BarResponse, len(bars))
	for i, bar := range bars {
		result[i] = BarResponse{
			BookingID:       bar.BookingID,
			TableID:         bar.TableID,
			Status:          string(bar.Status),
			LeftPercent:     bar.LeftPercent,
			WidthPercent:    bar.WidthPercent,
			StartTime:       formatMinute(bar.StartMinute),
			EndTime:         formatMinute(bar.EndMinute),
			ContinuesBefore: bar.ContinuesBefore,
			ContinuesAfter:  bar.ContinuesAfter,
			Style:           fromStyle(bar.Style),
			Caption: CaptionResponse{
				Title:     bar.Caption.Title,
				TimeRange: bar.Caption.TimeRange,
				IsGuest:   bar.Caption.IsGuest,
				Phone:     bar.Caption.Phone,
				Price:     bar.Caption.Price,
			},
		}
	}
	return result
}

// Legend легенда статусов для отрисовки таймлайна
func Legend() []LegendItemResponse {
	items := timeline.Legend()
	result := make([]LegendItemResponse, len(items))
	for i, item := range items {
		result[i] = LegendItemResponse{
			Status: string(item.Status),
			Style:  fromStyle(item.Style),
		}
	}
	return result
}

func fromStyle(s timeline.Style) StyleResponse {
	return StyleResponse{Color: s.Color, Background: s.Background, Label: s.Label}
}

func FromHourMarks(marks []timeline.HourMark) []HourMarkResponse {
	result := make([]HourMarkResponse, len(marks))
	for i, m := range marks {
		result[i] = HourMarkResponse{Hour: m.Hour, Label: m.Label, LeftPercent: m.LeftPercent}
	}
	return result
}

func FromNowMarker(m timeline.NowMarker) NowMarkerResponse {
	resp := NowMarkerResponse{
		At:      m.At.Format(time.RFC3339),
		Visible: m.Visible,
	}
	if m.Visible {
		percent := m.Percent
		resp.Percent = &percent
	}
	return resp
}

// formatMinute минуты от полуночи в "HH:MM"; конец суток - "24:00"
func formatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/domain.MinutesPerHour, minute%domain.MinutesPerHour)
}
