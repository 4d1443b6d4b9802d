package datecalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name    string
		today   time.Time
		billing time.Time
		want    int
	}{
		{
			name:    "списание через три дня",
			today:   time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
			billing: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			want:    3,
		},
		{
			name:    "списание сегодня",
			today:   time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
			billing: time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
			want:    0,
		},
		{
			name:    "дата списания прошла",
			today:   time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
			billing: time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC),
			want:    -15,
		},
		{
			name:    "компонент времени не влияет на результат",
			today:   time.Date(2024, 2, 12, 23, 59, 59, 0, time.UTC),
			billing: time.Date(2024, 2, 13, 0, 0, 1, 0, time.UTC),
			want:    1,
		},
		{
			name:    "переход через границу месяца",
			today:   time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC),
			billing: time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC),
			want:    7,
		},
		{
			name:    "переход через 29 февраля",
			today:   time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			billing: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(tt.today, tt.billing))
		})
	}
}

func TestMidnight(t *testing.T) {
	got := Midnight(time.Date(2024, 2, 12, 18, 30, 45, 123, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), got)
}
