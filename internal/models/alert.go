package models

import "time"

// Уровни важности уведомления.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Alert - уведомление о скором списании, которое формирует нотификатор.
// Нотификатор только производит уведомления, отрисовка - забота получателя.
type Alert struct {
	Severity          string    `json:"severity"`            // info, warning или error
	Message           string    `json:"message"`             // Текст уведомления
	DisplayDurationMs int64     `json:"display_duration_ms"` // Сколько показывать уведомление
	ServiceName       string    `json:"service_name"`        // Сервис, к которому относится уведомление
	EmittedAt         time.Time `json:"emitted_at"`          // Когда уведомление было сформировано
}
