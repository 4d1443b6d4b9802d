// Package services содержит нотификатор продлений: периодическую и
// реактивную переоценку дат списаний с выпуском уведомлений.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/sub-keeper/internal/lib/datecalc"
	"github.com/magabrotheeeer/sub-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/sub-keeper/internal/metrics"
	"github.com/magabrotheeeer/sub-keeper/internal/models"
)

// SubscriptionSource отдаёт нотификатору снимок подписок и сигнал об их изменении.
type SubscriptionSource interface {
	Snapshot(ctx context.Context) ([]models.Subscription, error)
	Changes() <-chan struct{}
}

// Sink принимает готовые уведомления. Нотификатор только формирует
// кортежи (важность, сообщение, длительность показа), отрисовка - забота
// реализации Sink.
type Sink interface {
	Publish(alert models.Alert) error
}

// Options - настройки классификации и расписания нотификатора.
type Options struct {
	CheckInterval        time.Duration // Период фоновой переоценки (по умолчанию 24h)
	TodayDisplayDuration time.Duration // Показ уведомления "списание сегодня"
	SoonDisplayDuration  time.Duration // Показ уведомления "списание через 3 дня"
}

// NotifierService переоценивает даты списаний и выпускает уведомления.
//
// Классификация по смещению в днях, только для активных подписок:
// 0 - срочное уведомление, 3 - предупреждение. Остальные смещения,
// включая просроченные, уведомлений не дают. Подавления повторов нет:
// каждый проход заново выпускает уведомления по подходящим записям.
type NotifierService struct {
	source SubscriptionSource
	sink   Sink
	log    *slog.Logger
	opts   Options
	now    func() time.Time
}

// NewNotifierService создает новый экземпляр NotifierService.
func NewNotifierService(source SubscriptionSource, sink Sink, log *slog.Logger, opts Options) *NotifierService {
	if opts.CheckInterval <= 0 {
		opts.CheckInterval = 24 * time.Hour
	}
	if opts.TodayDisplayDuration <= 0 {
		opts.TodayDisplayDuration = 10 * time.Second
	}
	if opts.SoonDisplayDuration <= 0 {
		opts.SoonDisplayDuration = 8 * time.Second
	}
	return &NotifierService{
		source: source,
		sink:   sink,
		log:    log,
		opts:   opts,
		now:    time.Now,
	}
}

// Run выполняет первый проход сразу, затем повторяет его по каждому
// сигналу об изменении хранилища и по таймеру. Возвращается после отмены
// контекста, таймер при этом останавливается.
func (s *NotifierService) Run(ctx context.Context) {
	s.log.Info("starting renewal notifier", slog.Duration("check_interval", s.opts.CheckInterval))

	s.Evaluate(ctx)
	metrics.NotifierRuns.WithLabelValues("startup").Inc()

	ticker := time.NewTicker(s.opts.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("renewal notifier stopped")
			return
		case <-s.source.Changes():
			s.Evaluate(ctx)
			metrics.NotifierRuns.WithLabelValues("mutation").Inc()
		case <-ticker.C:
			s.Evaluate(ctx)
			metrics.NotifierRuns.WithLabelValues("timer").Inc()
		}
	}
}

// Evaluate один раз классифицирует все записи и публикует уведомления.
func (s *NotifierService) Evaluate(ctx context.Context) {
	entries, err := s.source.Snapshot(ctx)
	if err != nil {
		s.log.Error("failed to snapshot subscriptions", sl.Err(err))
		return
	}

	today := s.now()
	emitted := 0
	for i := range entries {
		alert, ok := s.classify(&entries[i], today)
		if !ok {
			continue
		}
		if err := s.sink.Publish(alert); err != nil {
			s.log.Error("failed to publish alert", sl.Err(err),
				slog.String("service_name", alert.ServiceName))
			continue
		}
		metrics.AlertsEmitted.WithLabelValues(alert.Severity).Inc()
		emitted++
	}
	if emitted > 0 {
		s.log.Info("emitted renewal alerts", slog.Int("count", emitted))
	}
}

// classify возвращает уведомление для записи, если её смещение попадает
// в один из двух порогов. Счётчик "ближайших продлений" в сводке шире
// (окно 0..7) - расхождение намеренное.
func (s *NotifierService) classify(sub *models.Subscription, today time.Time) (models.Alert, bool) {
	if sub.Status != models.StatusActive {
		return models.Alert{}, false
	}

	switch datecalc.DaysUntil(today, sub.BillingDate) {
	case 0:
		return models.Alert{
			Severity:          models.SeverityError,
			Message:           fmt.Sprintf("%s expires today! Renewing soon: ₹%.2f", sub.ServiceName, sub.Amount),
			DisplayDurationMs: s.opts.TodayDisplayDuration.Milliseconds(),
			ServiceName:       sub.ServiceName,
			EmittedAt:         today,
		}, true
	case 3:
		return models.Alert{
			Severity:          models.SeverityWarning,
			Message:           fmt.Sprintf("%s expires in 3 days - ₹%.2f", sub.ServiceName, sub.Amount),
			DisplayDurationMs: s.opts.SoonDisplayDuration.Milliseconds(),
			ServiceName:       sub.ServiceName,
			EmittedAt:         today,
		}, true
	default:
		return models.Alert{}, false
	}
}
