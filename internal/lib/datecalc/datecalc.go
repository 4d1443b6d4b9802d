// Package datecalc реализует календарную арифметику для дат списания.
//
// Разница в днях считается только по календарной дате: обе стороны
// нормализуются к полуночи UTC до вычитания, поэтому перевод часов и
// часовые пояса на результат не влияют.
package datecalc

import "time"

const day = 24 * time.Hour

// Midnight отбрасывает компонент времени, возвращая полночь UTC той же
// календарной даты.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil возвращает число календарных дней от today до billing.
// Результат знаковый: 0 - списание сегодня, отрицательное - дата прошла.
func DaysUntil(today, billing time.Time) int {
	diff := Midnight(billing).Sub(Midnight(today))
	return int(diff / day)
}
