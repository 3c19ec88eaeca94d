// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/models"
)

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store reads and writes lists, items and contributions.
type Store struct {
	db       *sql.DB
	builder  squirrel.StatementBuilderType
	txOpts   *sql.TxOptions
	rowLocks bool
}

// New returns a Store for a connection opened with db.Open.
func New(conn *sql.DB, dbType string) *Store {
	s := &Store{db: conn}

	switch dbType {
	case db.TypePostgres:
		s.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
		s.txOpts = &sql.TxOptions{Isolation: sql.LevelReadCommitted}
		s.rowLocks = true
	default:
		s.builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}

	return s
}

// DB returns the underlying connection pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise; fn's error is returned unchanged.
func (s *Store) WithTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := s.db.BeginTx(ctx, s.txOpts)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}

func (s *Store) queryRow(ctx context.Context, q Querier, b squirrel.Sqlizer) (*sql.Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build query")
	}
	return q.QueryRowContext(ctx, query, args...), nil
}

func (s *Store) exec(ctx context.Context, q Querier, b squirrel.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "build statement")
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Lists

func (s *Store) InsertList(ctx context.Context, q Querier, list models.List) error {
	_, err := s.exec(ctx, q, s.builder.
		Insert("lists").
		Columns("id", "title", "created_at").
		Values(list.ID, list.Title, list.CreatedAt))
	if err != nil {
		return errors.Wrapf(err, "insert list %s", list.ID)
	}
	return nil
}

// GetList reports found=false when no list has the id.
func (s *Store) GetList(ctx context.Context, q Querier, id string) (models.List, bool, error) {
	row, err := s.queryRow(ctx, q, s.builder.
		Select("id", "title", "created_at").
		From("lists").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return models.List{}, false, err
	}

	var list models.List
	err = row.Scan(&list.ID, &list.Title, &list.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.List{}, false, nil
	}
	if err != nil {
		return models.List{}, false, errors.Wrapf(err, "get list %s", id)
	}
	return list, true, nil
}

// Items

func (s *Store) InsertItem(ctx context.Context, q Querier, item models.Item) error {
	_, err := s.exec(ctx, q, s.builder.
		Insert("items").
		Columns("id", "list_id", "name", "total_count", "created_at").
		Values(item.ID, item.ListID, item.Name, item.TotalCount, item.CreatedAt))
	if err != nil {
		return errors.Wrapf(err, "insert item %s", item.ID)
	}
	return nil
}

// GetItem reports found=false when no item has the id. With forUpdate the row
// stays locked until the surrounding transaction ends (PostgreSQL only; SQLite
// transactions are already serialized).
func (s *Store) GetItem(ctx context.Context, q Querier, id string, forUpdate bool) (models.Item, bool, error) {
	query := s.builder.
		Select("id", "list_id", "name", "total_count", "created_at").
		From("items").
		Where(squirrel.Eq{"id": id})
	if forUpdate && s.rowLocks {
		query = query.Suffix("FOR UPDATE")
	}

	row, err := s.queryRow(ctx, q, query)
	if err != nil {
		return models.Item{}, false, err
	}

	var item models.Item
	err = row.Scan(&item.ID, &item.ListID, &item.Name, &item.TotalCount, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, false, nil
	}
	if err != nil {
		return models.Item{}, false, errors.Wrapf(err, "get item %s", id)
	}
	return item, true, nil
}

// ListItems returns the items of a list in creation order.
func (s *Store) ListItems(ctx context.Context, q Querier, listID string) ([]models.Item, error) {
	query, args, err := s.builder.
		Select("id", "list_id", "name", "total_count", "created_at").
		From("items").
		Where(squirrel.Eq{"list_id": listID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build query")
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "list items of %s", listID)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.ListID, &item.Name, &item.TotalCount, &item.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan item")
		}
		items = append(items, item)
	}
	return items, errors.Wrap(rows.Err(), "iterate items")
}

func (s *Store) SetItemTotal(ctx context.Context, q Querier, itemID string, total int) error {
	_, err := s.exec(ctx, q, s.builder.
		Update("items").
		Set("total_count", total).
		Where(squirrel.Eq{"id": itemID}))
	if err != nil {
		return errors.Wrapf(err, "set total of item %s", itemID)
	}
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, q Querier, itemID string) (int64, error) {
	n, err := s.exec(ctx, q, s.builder.
		Delete("items").
		Where(squirrel.Eq{"id": itemID}))
	if err != nil {
		return 0, errors.Wrapf(err, "delete item %s", itemID)
	}
	return n, nil
}

// Contributions

// GetContribution reports found=false when the participant never voted on the item.
func (s *Store) GetContribution(ctx context.Context, q Querier, itemID, sessionID string) (models.Contribution, bool, error) {
	row, err := s.queryRow(ctx, q, s.builder.
		Select("item_id", "session_id", "count", "created_at", "updated_at").
		From("contributions").
		Where(squirrel.Eq{"item_id": itemID, "session_id": sessionID}))
	if err != nil {
		return models.Contribution{}, false, err
	}

	var c models.Contribution
	err = row.Scan(&c.ItemID, &c.SessionID, &c.Count, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contribution{}, false, nil
	}
	if err != nil {
		return models.Contribution{}, false, errors.Wrapf(err, "get contribution to item %s", itemID)
	}
	return c, true, nil
}

func (s *Store) InsertContribution(ctx context.Context, q Querier, c models.Contribution) error {
	_, err := s.exec(ctx, q, s.builder.
		Insert("contributions").
		Columns("item_id", "session_id", "count", "created_at", "updated_at").
		Values(c.ItemID, c.SessionID, c.Count, c.CreatedAt, c.UpdatedAt))
	if err != nil {
		return errors.Wrapf(err, "insert contribution to item %s", c.ItemID)
	}
	return nil
}

// UpdateContributionCount leaves created_at untouched.
func (s *Store) UpdateContributionCount(ctx context.Context, q Querier, itemID, sessionID string, count int, updatedAt time.Time) error {
	n, err := s.exec(ctx, q, s.builder.
		Update("contributions").
		Set("count", count).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"item_id": itemID, "session_id": sessionID}))
	if err != nil {
		return errors.Wrapf(err, "update contribution to item %s", itemID)
	}
	if n != 1 {
		return errors.Newf("update contribution to item %s: %d rows affected", itemID, n)
	}
	return nil
}

// SumContributions is the source of truth for an item's total_count.
func (s *Store) SumContributions(ctx context.Context, q Querier, itemID string) (int, error) {
	row, err := s.queryRow(ctx, q, s.builder.
		Select("COALESCE(SUM(count), 0)").
		From("contributions").
		Where(squirrel.Eq{"item_id": itemID}))
	if err != nil {
		return 0, err
	}

	var total int
	if err := row.Scan(&total); err != nil {
		return 0, errors.Wrapf(err, "sum contributions to item %s", itemID)
	}
	return total, nil
}

func (s *Store) DeleteContributions(ctx context.Context, q Querier, itemID string) (int64, error) {
	n, err := s.exec(ctx, q, s.builder.
		Delete("contributions").
		Where(squirrel.Eq{"item_id": itemID}))
	if err != nil {
		return 0, errors.Wrapf(err, "delete contributions to item %s", itemID)
	}
	return n, nil
}

// ListContributions returns the participant's count for every item of the
// list, in item creation order. Items the participant never voted on count 0.
func (s *Store) ListContributions(ctx context.Context, q Querier, listID, sessionID string) ([]models.ItemContribution, error) {
	query, args, err := s.builder.
		Select("i.id", "COALESCE(c.count, 0)").
		From("items i").
		LeftJoin("contributions c ON c.item_id = i.id AND c.session_id = ?", sessionID).
		Where(squirrel.Eq{"i.list_id": listID}).
		OrderBy("i.created_at", "i.id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build query")
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "list contributions to list %s", listID)
	}
	defer rows.Close()

	contributions := []models.ItemContribution{}
	for rows.Next() {
		var c models.ItemContribution
		if err := rows.Scan(&c.ItemID, &c.Count); err != nil {
			return nil, errors.Wrap(err, "scan contribution")
		}
		contributions = append(contributions, c)
	}
	return contributions, errors.Wrap(rows.Err(), "iterate contributions")
}
