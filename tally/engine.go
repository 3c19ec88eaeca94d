// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/store"
)

// Engine applies votes and removals. It keeps no state between calls; every
// operation is a single store transaction.
type Engine struct {
	store  *store.Store
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock overrides the timestamp source for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(st *store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:  st,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) timestamp() time.Time {
	return e.now().UTC()
}

// nextCount applies delta to the participant's current contribution.
// A participant can only retract votes they still hold.
func nextCount(current models.Contribution, found bool, delta int) (int, error) {
	switch delta {
	case models.DeltaIncrement:
		if !found {
			return delta, nil
		}
		return current.Count + delta, nil
	case models.DeltaDecrement:
		if !found || current.Count <= 0 {
			return 0, ErrNoContributionToRetract
		}
		return current.Count + delta, nil
	default:
		return 0, ErrInvalidDelta
	}
}

// ApplyVote adds delta (+1 or -1) to the participant's contribution on the
// item and recomputes the item's total from all of its contributions. The
// contribution write and the total update commit together or not at all.
func (e *Engine) ApplyVote(ctx context.Context, itemID, sessionID string, delta int) (models.Item, error) {
	if delta != models.DeltaIncrement && delta != models.DeltaDecrement {
		return models.Item{}, ErrInvalidDelta
	}
	if strings.TrimSpace(sessionID) == "" {
		return models.Item{}, errors.Wrap(ErrInvalidInput, "session id is required")
	}

	var updated models.Item
	err := e.store.WithTx(ctx, func(q store.Querier) error {
		item, found, err := e.store.GetItem(ctx, q, itemID, true)
		if err != nil {
			return err
		}
		if !found {
			return ErrItemNotFound
		}

		current, found, err := e.store.GetContribution(ctx, q, itemID, sessionID)
		if err != nil {
			return err
		}
		count, err := nextCount(current, found, delta)
		if err != nil {
			return err
		}

		now := e.timestamp()
		if found {
			err = e.store.UpdateContributionCount(ctx, q, itemID, sessionID, count, now)
		} else {
			err = e.store.InsertContribution(ctx, q, models.Contribution{
				ItemID:    itemID,
				SessionID: sessionID,
				Count:     count,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		if err != nil {
			return err
		}

		total, err := e.store.SumContributions(ctx, q, itemID)
		if err != nil {
			return err
		}
		if err := e.store.SetItemTotal(ctx, q, itemID, total); err != nil {
			return err
		}

		item.TotalCount = total
		updated = item
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrItemNotFound) && !errors.Is(err, ErrNoContributionToRetract) {
			e.logger.Error("vote failed", "item_id", itemID, "delta", delta, "error", err)
		}
		return models.Item{}, err
	}

	e.logger.Info("vote applied", "item_id", itemID, "delta", delta, "total_count", updated.TotalCount)
	return updated, nil
}

// RemoveItem deletes the item and its contributions when its total is exactly
// zero. A missing item or a non-zero total reports false without an error.
func (e *Engine) RemoveItem(ctx context.Context, itemID string) (bool, error) {
	removed := false
	err := e.store.WithTx(ctx, func(q store.Querier) error {
		item, found, err := e.store.GetItem(ctx, q, itemID, true)
		if err != nil {
			return err
		}
		if !found || item.TotalCount != 0 {
			return nil
		}

		if _, err := e.store.DeleteContributions(ctx, q, itemID); err != nil {
			return err
		}
		n, err := e.store.DeleteItem(ctx, q, itemID)
		if err != nil {
			return err
		}
		removed = n == 1
		return nil
	})
	if err != nil {
		e.logger.Error("item removal failed", "item_id", itemID, "error", err)
		return false, err
	}

	e.logger.Info("item removal", "item_id", itemID, "removed", removed)
	return removed, nil
}

// Contribution returns the participant's net count on the item, 0 if none.
func (e *Engine) Contribution(ctx context.Context, itemID, sessionID string) (int, error) {
	c, found, err := e.store.GetContribution(ctx, e.store.DB(), itemID, sessionID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	return c.Count, nil
}

// ListContributions returns the participant's count for every item in the list.
func (e *Engine) ListContributions(ctx context.Context, listID, sessionID string) ([]models.ItemContribution, error) {
	return e.store.ListContributions(ctx, e.store.DB(), listID, sessionID)
}

// CreateList stores a new list under a fresh id.
func (e *Engine) CreateList(ctx context.Context, title string) (models.List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.List{}, errors.Wrap(ErrInvalidInput, "title is required")
	}

	list := models.List{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: e.timestamp(),
	}
	if err := e.store.InsertList(ctx, e.store.DB(), list); err != nil {
		return models.List{}, err
	}

	e.logger.Info("list created", "list_id", list.ID)
	return list, nil
}

// GetList returns the list with its items in creation order.
func (e *Engine) GetList(ctx context.Context, listID string) (models.ListWithItems, error) {
	list, found, err := e.store.GetList(ctx, e.store.DB(), listID)
	if err != nil {
		return models.ListWithItems{}, err
	}
	if !found {
		return models.ListWithItems{}, ErrListNotFound
	}

	items, err := e.store.ListItems(ctx, e.store.DB(), listID)
	if err != nil {
		return models.ListWithItems{}, err
	}
	return models.ListWithItems{List: list, Items: items}, nil
}

// CreateItem adds an item with a zero total to an existing list.
func (e *Engine) CreateItem(ctx context.Context, listID, name string) (models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Item{}, errors.Wrap(ErrInvalidInput, "name is required")
	}

	item := models.Item{
		ID:         uuid.NewString(),
		ListID:     listID,
		Name:       name,
		TotalCount: 0,
		CreatedAt:  e.timestamp(),
	}
	err := e.store.WithTx(ctx, func(q store.Querier) error {
		_, found, err := e.store.GetList(ctx, q, listID)
		if err != nil {
			return err
		}
		if !found {
			return ErrListNotFound
		}
		return e.store.InsertItem(ctx, q, item)
	})
	if err != nil {
		return models.Item{}, err
	}

	e.logger.Info("item created", "list_id", listID, "item_id", item.ID)
	return item, nil
}

// GetItem returns ErrItemNotFound for unknown ids.
func (e *Engine) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	item, found, err := e.store.GetItem(ctx, e.store.DB(), itemID, false)
	if err != nil {
		return models.Item{}, err
	}
	if !found {
		return models.Item{}, ErrItemNotFound
	}
	return item, nil
}
