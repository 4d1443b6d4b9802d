package services

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sub-keeper/internal/models"
	"github.com/magabrotheeeer/sub-keeper/internal/store"
)

type recordingSink struct {
	mu     sync.Mutex
	alerts []models.Alert
}

func (r *recordingSink) Publish(alert models.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert)
	return nil
}

func (r *recordingSink) all() []models.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Alert(nil), r.alerts...)
}

var testToday = time.Date(2024, 2, 12, 9, 0, 0, 0, time.UTC)

func newTestNotifier(t *testing.T, src SubscriptionSource) (*NotifierService, *recordingSink) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sink := &recordingSink{}
	svc := NewNotifierService(src, sink, logger, Options{
		CheckInterval:        24 * time.Hour,
		TodayDisplayDuration: 10 * time.Second,
		SoonDisplayDuration:  8 * time.Second,
	})
	svc.now = func() time.Time { return testToday }
	return svc, sink
}

func sub(name string, amount float64, billing string, status string) models.Subscription {
	date, err := time.Parse("2006-01-02", billing)
	if err != nil {
		panic(err)
	}
	return models.Subscription{ServiceName: name, Amount: amount, BillingDate: date, Status: status}
}

func TestEvaluate_Classification(t *testing.T) {
	tests := []struct {
		name         string
		sub          models.Subscription
		wantSeverity string
		wantDuration int64
		wantMessage  string
	}{
		{
			name:         "списание сегодня - срочное уведомление",
			sub:          sub("Netflix", 15.99, "2024-02-12", models.StatusActive),
			wantSeverity: models.SeverityError,
			wantDuration: 10000,
			wantMessage:  "Netflix expires today! Renewing soon: ₹15.99",
		},
		{
			name:         "списание через три дня - предупреждение",
			sub:          sub("Spotify", 9.99, "2024-02-15", models.StatusActive),
			wantSeverity: models.SeverityWarning,
			wantDuration: 8000,
			wantMessage:  "Spotify expires in 3 days - ₹9.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.New()
			_, err := st.Create(context.Background(), tt.sub)
			require.NoError(t, err)

			svc, sink := newTestNotifier(t, st)
			svc.Evaluate(context.Background())

			alerts := sink.all()
			require.Len(t, alerts, 1)
			assert.Equal(t, tt.wantSeverity, alerts[0].Severity)
			assert.Equal(t, tt.wantDuration, alerts[0].DisplayDurationMs)
			assert.Equal(t, tt.wantMessage, alerts[0].Message)
		})
	}
}

func TestEvaluate_OnlyOffsetsZeroAndThreeAlert(t *testing.T) {
	// смещения 1, 2 и 4..7 считаются "ближайшими" в сводке,
	// но уведомлений не дают; просроченные тоже молчат
	st := store.New()
	for _, billing := range []string{
		"2024-02-13", // 1
		"2024-02-14", // 2
		"2024-02-16", // 4
		"2024-02-17", // 5
		"2024-02-18", // 6
		"2024-02-19", // 7
		"2024-02-11", // -1
		"2024-01-01", // далеко в прошлом
		"2024-03-01", // далеко в будущем
	} {
		_, err := st.Create(context.Background(), sub("svc", 1, billing, models.StatusActive))
		require.NoError(t, err)
	}

	svc, sink := newTestNotifier(t, st)
	svc.Evaluate(context.Background())

	assert.Empty(t, sink.all())
}

func TestEvaluate_ExpiredNeverAlerts(t *testing.T) {
	st := store.New()
	_, err := st.Create(context.Background(), sub("Netflix", 15.99, "2024-02-15", models.StatusExpired))
	require.NoError(t, err)
	_, err = st.Create(context.Background(), sub("Adobe", 52.99, "2024-02-12", models.StatusExpired))
	require.NoError(t, err)

	svc, sink := newTestNotifier(t, st)
	svc.Evaluate(context.Background())

	assert.Empty(t, sink.all())
}

func TestEvaluate_NoDeduplicationBetweenPasses(t *testing.T) {
	st := store.New()
	_, err := st.Create(context.Background(), sub("Netflix", 15.99, "2024-02-12", models.StatusActive))
	require.NoError(t, err)

	svc, sink := newTestNotifier(t, st)
	svc.Evaluate(context.Background())
	svc.Evaluate(context.Background())

	assert.Len(t, sink.all(), 2)
}

func TestRun_ReactsToStoreChangesAndStopsOnCancel(t *testing.T) {
	st := store.New()
	svc, sink := newTestNotifier(t, st)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	// мутация хранилища вызывает реактивный проход
	_, err := st.Create(context.Background(), sub("Netflix", 15.99, "2024-02-12", models.StatusActive))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(sink.all()) >= 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notifier did not stop after context cancellation")
	}
}
