// Package notifications реализует ленту уведомлений в памяти процесса.
//
// Лента - ограниченный буфер: при переполнении старые уведомления
// вытесняются. Нотификатор пишет в ленту как в Sink, клиент читает
// последние уведомления через API и сам отвечает за их показ и скрытие.
package notifications

import (
	"sync"

	"github.com/magabrotheeeer/sub-keeper/internal/models"
)

// Feed - ограниченная лента уведомлений, реализует notifier.Sink.
type Feed struct {
	mu       sync.RWMutex
	alerts   []models.Alert
	capacity int
}

// NewFeed создает ленту на capacity уведомлений (минимум 1).
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = 100
	}
	return &Feed{capacity: capacity}
}

// Publish добавляет уведомление, вытесняя самое старое при переполнении.
func (f *Feed) Publish(alert models.Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.alerts = append(f.alerts, alert)
	if len(f.alerts) > f.capacity {
		f.alerts = f.alerts[len(f.alerts)-f.capacity:]
	}
	return nil
}

// List возвращает не более limit последних уведомлений, новые первыми.
func (f *Feed) List(limit int) []models.Alert {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if limit <= 0 || limit > len(f.alerts) {
		limit = len(f.alerts)
	}

	result := make([]models.Alert, 0, limit)
	for i := len(f.alerts) - 1; i >= len(f.alerts)-limit; i-- {
		result = append(result, f.alerts[i])
	}
	return result
}

// Len возвращает текущее количество уведомлений в ленте.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.alerts)
}
