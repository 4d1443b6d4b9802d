// Package models содержит доменную модель пользователя системы.
// Модель одна на процесс: мультипользовательский режим не поддерживается,
// привязки подписок к пользователю нет.
package models

// User представляет единственного пользователя приложения.
type User struct {
	ID               string `json:"id"`                // Уникальный идентификатор пользователя
	Name             string `json:"name"`              // Полное имя
	Email            string `json:"email"`             // Электронная почта
	RemindersEnabled bool   `json:"reminders_enabled"` // Включены ли напоминания о продлении
}

// DummyUser используется для приёма данных настроек из JSON-запроса
// до их валидации.
type DummyUser struct {
	Name             string `json:"name" validate:"required"`        // Полное имя
	Email            string `json:"email" validate:"required,email"` // Электронная почта
	RemindersEnabled bool   `json:"reminders_enabled"`               // Флаг напоминаний
}

// DummyLogin используется для приёма данных формы входа.
// Реальной аутентификации нет: форма входа лишь открывает сессию.
type DummyLogin struct {
	Name  string `json:"name" validate:"required"`        // Имя пользователя
	Email string `json:"email" validate:"required,email"` // Электронная почта
}
