// Package store реализует упорядоченное хранилище подписок в памяти процесса.
//
// Хранилище сознательно не имеет персистентности: весь набор записей
// живёт ровно столько, сколько живёт процесс. Записи хранятся в порядке
// добавления, операции Update и Remove по отсутствующему id возвращают
// нулевое число затронутых записей, а не ошибку.
//
// Каждая мутация взводит сигнал Changes, по которому нотификатор
// переоценивает даты списаний.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/sub-keeper/internal/models"
)

// ErrNotFound возвращается Read, если записи с таким id нет.
var ErrNotFound = errors.New("subscription not found")

// Store хранит упорядоченный список подписок.
type Store struct {
	mu      sync.RWMutex
	entries []models.Subscription
	changes chan struct{}
}

// New создает пустое хранилище.
func New() *Store {
	return &Store{
		changes: make(chan struct{}, 1),
	}
}

// Changes возвращает канал, в который отправляется сигнал после каждой
// мутации. Сигналы схлопываются: если получатель не успел прочитать
// предыдущий, новый не добавляется.
func (s *Store) Changes() <-chan struct{} {
	return s.changes
}

func (s *Store) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// Create добавляет новую подписку в конец списка, присваивает ей
// сгенерированный id и возвращает его. Существующие записи не меняются.
func (s *Store) Create(ctx context.Context, sub models.Subscription) (string, error) {
	const op = "store.Create"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sub.ID = uuid.NewString()

	s.mu.Lock()
	s.entries = append(s.entries, sub)
	s.mu.Unlock()

	s.notify()
	return sub.ID, nil
}

// Read возвращает копию подписки по id или ErrNotFound.
func (s *Store) Read(ctx context.Context, id string) (*models.Subscription, error) {
	const op = "store.Read"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			found := s.entries[i]
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
}

// Update замещает подписку с совпадающим id и возвращает количество
// затронутых записей. Если записи нет - 0, без ошибки.
func (s *Store) Update(ctx context.Context, sub models.Subscription, id string) (int, error) {
	const op = "store.Update"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	count := 0
	for i := range s.entries {
		if s.entries[i].ID == id {
			sub.ID = id
			s.entries[i] = sub
			count++
			break
		}
	}
	s.mu.Unlock()

	if count > 0 {
		s.notify()
	}
	return count, nil
}

// Remove удаляет подписку по id, сохраняя порядок остальных записей,
// и возвращает количество удалённых. Если записи нет - 0, без ошибки.
func (s *Store) Remove(ctx context.Context, id string) (int, error) {
	const op = "store.Remove"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	count := 0
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			count++
			break
		}
	}
	s.mu.Unlock()

	if count > 0 {
		s.notify()
	}
	return count, nil
}

// List возвращает копии подписок в порядке добавления с пагинацией.
func (s *Store) List(ctx context.Context, limit, offset int) ([]*models.Subscription, error) {
	const op = "store.List"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset >= len(s.entries) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.entries) {
		end = len(s.entries)
	}

	result := make([]*models.Subscription, 0, end-offset)
	for i := offset; i < end; i++ {
		item := s.entries[i]
		result = append(result, &item)
	}
	return result, nil
}

// Snapshot возвращает копию всего списка в порядке добавления.
// Используется нотификатором и при подсчёте сводки.
func (s *Store) Snapshot(ctx context.Context) ([]models.Subscription, error) {
	const op = "store.Snapshot"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Subscription, len(s.entries))
	copy(result, s.entries)
	return result, nil
}

// Len возвращает текущее количество записей.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
