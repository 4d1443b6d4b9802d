// Package models содержит доменные структуры, описывающие подписку,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import "time"

// Статусы подписки. Статус выставляется пользователем вручную и никогда
// не выводится автоматически из даты списания.
const (
	StatusActive  = "Active"
	StatusExpired = "Expired"
)

// SuggestedCategories - рекомендуемый список категорий для формы подписки.
// Категория остаётся свободным текстом, список не является enum'ом.
var SuggestedCategories = []string{
	"Entertainment", "Music", "Software", "Design", "Cloud Storage",
	"News", "Fitness", "Education", "Other",
}

// Subscription представляет собой основную модель подписки,
// используемую в бизнес-логике и хранилище.
// BillingDate хранится без компонента времени (полночь UTC).
type Subscription struct {
	ID          string    // Уникальный идентификатор записи (uuid)
	ServiceName string    // Название сервиса подписки
	Amount      float64   // Цена подписки за месяц
	BillingDate time.Time // Дата следующего списания
	Status      string    // Active или Expired
	Category    string    // Категория, опциональна
}

// DummySubscription используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Subscription.
// Дата приходит строкой, чтобы её можно было валидировать и парсить вручную.
type DummySubscription struct {
	ServiceName string  `json:"service_name" validate:"required"`               // Название сервиса
	Amount      float64 `json:"amount" validate:"required,gt=0"`                // Цена (>0)
	BillingDate string  `json:"billing_date" validate:"required"`               // Дата списания в формате 2006-01-02
	Status      string  `json:"status" validate:"required,oneof=Active Expired"` // Статус
	Category    string  `json:"category,omitempty" validate:"omitempty"`        // Категория (опционально)
}

// SubscriptionView - представление подписки для ответа API: дата списания
// отдается строкой, дополнительно вычисляются дни до списания и признак
// скорого продления (0..3 дня для активной подписки).
type SubscriptionView struct {
	ID           string  `json:"id"`
	ServiceName  string  `json:"service_name"`
	Amount       float64 `json:"amount"`
	BillingDate  string  `json:"billing_date"`
	Status       string  `json:"status"`
	Category     string  `json:"category,omitempty"`
	DaysUntil    int     `json:"days_until"`
	ExpiringSoon bool    `json:"expiring_soon"`
}
