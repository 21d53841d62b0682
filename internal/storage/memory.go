package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/okoval/handmade-shop/internal/models"
)

type memoryEntry struct {
	version int64
	body    []byte
}

// MemoryStore implements Store over a mutex-guarded map with the same
// blob-and-version contract as the MySQL backend. It backs tests and the
// DSN-less development fallback.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	log     *slog.Logger
}

func NewMemoryStore(log *slog.Logger) *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), log: log}
}

func memoryKey(scope, key string) string { return scope + "\x00" + key }

func (s *MemoryStore) LoadCart(ctx context.Context, scope string) (models.Cart, int64, error) {
	s.mu.Lock()
	entry, ok := s.entries[memoryKey(scope, cartKey)]
	s.mu.Unlock()
	if !ok {
		return models.Cart{}, 0, nil
	}

	var lines []models.CartLine
	if err := json.Unmarshal(entry.body, &lines); err != nil {
		s.log.Warn("discarding unreadable cart blob", "scope", scope, "error", err)
		return models.Cart{}, entry.version, nil
	}
	return models.Cart{Lines: lines}, entry.version, nil
}

func (s *MemoryStore) SaveCart(ctx context.Context, scope string, cart models.Cart, version int64) error {
	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}
	body, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.saveEntry(scope, cartKey, body, version)
}

func (s *MemoryStore) ClearCart(ctx context.Context, scope string) error {
	s.mu.Lock()
	delete(s.entries, memoryKey(scope, cartKey))
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) AppendOrder(ctx context.Context, scope string, order models.Order) error {
	for attempt := 0; attempt < appendAttempts; attempt++ {
		s.mu.Lock()
		entry, ok := s.entries[memoryKey(scope, ordersKey)]
		s.mu.Unlock()

		var (
			orders  []models.Order
			version int64
		)
		if ok {
			version = entry.version
			orders = decodeOrders(entry.body, scope, s.log)
		}
		orders = append(orders, order)

		body, err := json.Marshal(orders)
		if err != nil {
			return fmt.Errorf("encode order log: %w", err)
		}
		err = s.saveEntry(scope, ordersKey, body, version)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return err
		}
	}
	return fmt.Errorf("append order for scope %s: %w", scope, ErrVersionConflict)
}

func (s *MemoryStore) LoadOrders(ctx context.Context, scope string) ([]models.Order, error) {
	s.mu.Lock()
	entry, ok := s.entries[memoryKey(scope, ordersKey)]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return decodeOrders(entry.body, scope, s.log), nil
}

func (s *MemoryStore) saveEntry(scope, key string, body []byte, version int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := memoryKey(scope, key)
	entry, ok := s.entries[k]
	if version == 0 {
		if ok {
			return ErrVersionConflict
		}
		s.entries[k] = memoryEntry{version: 1, body: body}
		return nil
	}
	if !ok || entry.version != version {
		return ErrVersionConflict
	}
	s.entries[k] = memoryEntry{version: version + 1, body: body}
	return nil
}
