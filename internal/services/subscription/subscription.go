// Package services содержит бизнес-логику для управления подписками
// и производное представление: фильтрацию, поиск и сводку.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/sub-keeper/internal/lib/datecalc"
	"github.com/magabrotheeeer/sub-keeper/internal/metrics"
	"github.com/magabrotheeeer/sub-keeper/internal/models"
)

// BillingDateLayout - формат даты списания в запросах.
const BillingDateLayout = "2006-01-02"

// SubscriptionStore определяет методы для работы с подписками в хранилище.
type SubscriptionStore interface {
	// Create добавляет новую подписку и возвращает её ID.
	Create(ctx context.Context, sub models.Subscription) (string, error)
	// Read возвращает подписку по ID.
	Read(ctx context.Context, id string) (*models.Subscription, error)
	// Update обновляет данные подписки по ID, возвращает число затронутых записей.
	Update(ctx context.Context, sub models.Subscription, id string) (int, error)
	// Remove удаляет подписку по ID, возвращает число удалённых записей.
	Remove(ctx context.Context, id string) (int, error)
	// List возвращает подписки в порядке добавления с пагинацией.
	List(ctx context.Context, limit, offset int) ([]*models.Subscription, error)
	// Snapshot возвращает копию всего списка.
	Snapshot(ctx context.Context) ([]models.Subscription, error)
}

// SubscriptionService реализует бизнес-логику работы с подписками.
type SubscriptionService struct {
	store              SubscriptionStore
	log                *slog.Logger
	upcomingWindowDays int
	now                func() time.Time
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
// upcomingWindowDays задает окно счётчика ближайших продлений (по умолчанию 7).
func NewSubscriptionService(store SubscriptionStore, log *slog.Logger, upcomingWindowDays int) *SubscriptionService {
	if upcomingWindowDays <= 0 {
		upcomingWindowDays = 7
	}
	return &SubscriptionService{
		store:              store,
		log:                log,
		upcomingWindowDays: upcomingWindowDays,
		now:                time.Now,
	}
}

// Create создает новую подписку и возвращает её ID.
// Дата списания парсится на записи: некорректная дата - ошибка валидации,
// в хранилище попадают только записи с разобранной датой.
func (s *SubscriptionService) Create(ctx context.Context, req models.DummySubscription) (string, error) {
	billingDate, err := time.Parse(BillingDateLayout, req.BillingDate)
	if err != nil {
		return "", fmt.Errorf("invalid billing date: %w", err)
	}

	sub := models.Subscription{
		ServiceName: req.ServiceName,
		Amount:      req.Amount,
		BillingDate: datecalc.Midnight(billingDate),
		Status:      req.Status,
		Category:    req.Category,
	}

	id, err := s.store.Create(ctx, sub)
	if err != nil {
		return "", err
	}
	metrics.StoreMutations.WithLabelValues("create").Inc()

	s.log.Info("created new subscription", slog.String("id", id))
	return id, nil
}

// Update обновляет подписку по ID и возвращает число затронутых записей.
// По отсутствующему ID - 0 без ошибки.
func (s *SubscriptionService) Update(ctx context.Context, req models.DummySubscription, id string) (int, error) {
	billingDate, err := time.Parse(BillingDateLayout, req.BillingDate)
	if err != nil {
		return 0, fmt.Errorf("invalid billing date: %w", err)
	}

	sub := models.Subscription{
		ServiceName: req.ServiceName,
		Amount:      req.Amount,
		BillingDate: datecalc.Midnight(billingDate),
		Status:      req.Status,
		Category:    req.Category,
	}

	res, err := s.store.Update(ctx, sub, id)
	if err != nil {
		return 0, err
	}
	metrics.StoreMutations.WithLabelValues("update").Inc()

	s.log.Info("updated subscription", slog.String("id", id), slog.Int("affected", res))
	return res, nil
}

// Remove удаляет подписку по ID и возвращает число удалённых записей.
func (s *SubscriptionService) Remove(ctx context.Context, id string) (int, error) {
	count, err := s.store.Remove(ctx, id)
	if err != nil {
		return 0, err
	}
	metrics.StoreMutations.WithLabelValues("remove").Inc()

	s.log.Info("removed subscription", slog.String("id", id), slog.Int("affected", count))
	return count, nil
}

// Read возвращает подписку по ID.
func (s *SubscriptionService) Read(ctx context.Context, id string) (*models.Subscription, error) {
	return s.store.Read(ctx, id)
}

// Filter возвращает подписки, удовлетворяющие фильтру, в порядке хранилища.
// Поиск - вхождение подстроки в название сервиса без учёта регистра,
// статус All пропускает любые записи. Функция чистая: одинаковые входы
// дают одинаковый результат.
func (s *SubscriptionService) Filter(ctx context.Context, filter models.Filter, limit, offset int) ([]*models.Subscription, error) {
	entries, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Subscription, 0, len(entries))
	term := strings.ToLower(filter.SearchTerm)
	for i := range entries {
		if !strings.Contains(strings.ToLower(entries[i].ServiceName), term) {
			continue
		}
		if !matchesStatus(entries[i].Status, filter.Status) {
			continue
		}
		matched = append(matched, &entries[i])
	}

	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func matchesStatus(status, filter string) bool {
	return filter == "" || filter == models.StatusFilterAll || status == filter
}

// Summary считает сводку по всему хранилищу: количество активных подписок,
// суммарную месячную стоимость активных (просроченные активные тоже
// считаются - статус важнее даты) и число активных подписок со списанием
// в ближайшем окне [0, upcomingWindowDays].
//
// Окно счётчика шире набора порогов нотификатора (0 и 3) -
// расхождение намеренное.
func (s *SubscriptionService) Summary(ctx context.Context) (*models.Summary, error) {
	entries, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	summary := &models.Summary{}
	for i := range entries {
		if entries[i].Status != models.StatusActive {
			continue
		}
		summary.ActiveCount++
		summary.TotalMonthly += entries[i].Amount

		offset := datecalc.DaysUntil(today, entries[i].BillingDate)
		if offset >= 0 && offset <= s.upcomingWindowDays {
			summary.UpcomingRenewals++
		}
	}
	return summary, nil
}

// ListViews возвращает отфильтрованный список в виде представлений для API:
// дата списания строкой, дни до списания и признак скорого продления.
func (s *SubscriptionService) ListViews(ctx context.Context, filter models.Filter, limit, offset int) ([]models.SubscriptionView, error) {
	entries, err := s.Filter(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	today := s.now()
	views := make([]models.SubscriptionView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, s.view(entry, today))
	}
	return views, nil
}

// ReadView возвращает представление одной подписки по ID.
func (s *SubscriptionService) ReadView(ctx context.Context, id string) (*models.SubscriptionView, error) {
	entry, err := s.store.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.view(entry, s.now())
	return &view, nil
}

func (s *SubscriptionService) view(entry *models.Subscription, today time.Time) models.SubscriptionView {
	offset := datecalc.DaysUntil(today, entry.BillingDate)
	return models.SubscriptionView{
		ID:           entry.ID,
		ServiceName:  entry.ServiceName,
		Amount:       entry.Amount,
		BillingDate:  entry.BillingDate.Format(BillingDateLayout),
		Status:       entry.Status,
		Category:     entry.Category,
		DaysUntil:    offset,
		ExpiringSoon: entry.Status == models.StatusActive && offset >= 0 && offset <= 3,
	}
}
