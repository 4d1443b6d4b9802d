// Package models содержит структуры для фильтрации списка подписок
// и агрегированной сводки по хранилищу.
package models

// Статусы фильтра. Пустая строка эквивалентна StatusFilterAll.
const (
	StatusFilterAll     = "All"
	StatusFilterActive  = "Active"
	StatusFilterExpired = "Expired"
)

// Filter представляет параметры фильтрации списка подписок.
// SearchTerm сопоставляется с названием сервиса без учёта регистра.
type Filter struct {
	SearchTerm string // Подстрока для поиска по названию сервиса
	Status     string // All, Active или Expired
}

// Summary - агрегированная сводка по всем подпискам хранилища.
// UpcomingRenewals считает активные подписки со списанием в ближайшие
// N дней (окно настраивается, по умолчанию 7), включая сегодняшний день.
type Summary struct {
	ActiveCount      int     `json:"active_count"`
	TotalMonthly     float64 `json:"total_monthly"`
	UpcomingRenewals int     `json:"upcoming_renewals"`
}
