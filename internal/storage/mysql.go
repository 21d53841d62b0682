package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-sql-driver/mysql"

	"github.com/okoval/handmade-shop/internal/models"
)

// appendAttempts bounds the internal read-modify-write retry when two
// checkouts race on the same order log.
const appendAttempts = 5

// MySQLStore persists both collections as whole JSON blobs in a single
// key-value table, one row per (scope, entry_key). Saves are
// compare-and-swap on the version column.
type MySQLStore struct {
	db  *sql.DB
	log *slog.Logger
}

func NewMySQLStore(db *sql.DB, log *slog.Logger) *MySQLStore {
	return &MySQLStore{db: db, log: log}
}

// EnsureSchema creates the storage table if it is missing. Called once
// at startup; safe to call again.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS storage_entries (
			scope      VARCHAR(64)  NOT NULL,
			entry_key  VARCHAR(32)  NOT NULL,
			version    BIGINT       NOT NULL,
			body       MEDIUMTEXT   NOT NULL,
			updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (scope, entry_key)
		)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create storage_entries: %w", err)
	}
	return nil
}

func (s *MySQLStore) LoadCart(ctx context.Context, scope string) (models.Cart, int64, error) {
	body, version, err := s.loadEntry(ctx, scope, cartKey)
	if err != nil {
		return models.Cart{}, 0, err
	}
	if body == nil {
		return models.Cart{}, 0, nil
	}

	var lines []models.CartLine
	if err := json.Unmarshal(body, &lines); err != nil {
		// A blob we can no longer read counts as "no cart". The entry
		// keeps its version so the next save still goes through CAS.
		s.log.Warn("discarding unreadable cart blob", "scope", scope, "error", err)
		return models.Cart{}, version, nil
	}
	return models.Cart{Lines: lines}, version, nil
}

func (s *MySQLStore) SaveCart(ctx context.Context, scope string, cart models.Cart, version int64) error {
	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}
	body, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.saveEntry(ctx, scope, cartKey, body, version)
}

func (s *MySQLStore) ClearCart(ctx context.Context, scope string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM storage_entries WHERE scope = ? AND entry_key = ?", scope, cartKey)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *MySQLStore) AppendOrder(ctx context.Context, scope string, order models.Order) error {
	for attempt := 0; attempt < appendAttempts; attempt++ {
		body, version, err := s.loadEntry(ctx, scope, ordersKey)
		if err != nil {
			return err
		}

		orders := decodeOrders(body, scope, s.log)
		orders = append(orders, order)

		encoded, err := json.Marshal(orders)
		if err != nil {
			return fmt.Errorf("encode order log: %w", err)
		}
		err = s.saveEntry(ctx, scope, ordersKey, encoded, version)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return err
		}
	}
	return fmt.Errorf("append order for scope %s: %w", scope, ErrVersionConflict)
}

func (s *MySQLStore) LoadOrders(ctx context.Context, scope string) ([]models.Order, error) {
	body, _, err := s.loadEntry(ctx, scope, ordersKey)
	if err != nil {
		return nil, err
	}
	return decodeOrders(body, scope, s.log), nil
}

// loadEntry returns (nil, 0, nil) when no row exists.
func (s *MySQLStore) loadEntry(ctx context.Context, scope, key string) ([]byte, int64, error) {
	var (
		body    []byte
		version int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT body, version FROM storage_entries WHERE scope = ? AND entry_key = ?",
		scope, key).Scan(&body, &version)
	if err == sql.ErrNoRows {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("load %s: %w", key, err)
	}
	return body, version, nil
}

func (s *MySQLStore) saveEntry(ctx context.Context, scope, key string, body []byte, version int64) error {
	if version == 0 {
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO storage_entries (scope, entry_key, version, body) VALUES (?, ?, 1, ?)",
			scope, key, body)
		if isDuplicateKey(err) {
			// Someone created the entry between our read and this
			// insert; the caller re-reads and replays.
			return ErrVersionConflict
		}
		if err != nil {
			return fmt.Errorf("insert %s: %w", key, err)
		}
		return nil
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE storage_entries SET version = version + 1, body = ?
		 WHERE scope = ? AND entry_key = ? AND version = ?`,
		body, scope, key, version)
	if err != nil {
		return fmt.Errorf("update %s: %w", key, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", key, err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func decodeOrders(body []byte, scope string, log *slog.Logger) []models.Order {
	if body == nil {
		return nil
	}
	var orders []models.Order
	if err := json.Unmarshal(body, &orders); err != nil {
		log.Warn("discarding unreadable order log blob", "scope", scope, "error", err)
		return nil
	}
	return orders
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
