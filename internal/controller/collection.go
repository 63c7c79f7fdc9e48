package controller

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// CollectionGateway is the slice of the API a collection controller needs.
// R is the stored item, D the payload without an id.
type CollectionGateway[R any, D any] interface {
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, draft D) (R, error)
	Update(ctx context.Context, id int, draft D) (R, error)
	Delete(ctx context.Context, id int) error
}

type Mode int

const (
	ModeViewing Mode = iota
	ModeEditing
	ModeSubmitting
)

// CollectionController drives list editing for one collection resource.
// The local list is only a cached view: every successful mutation is followed
// by a full re-fetch, so list truth always comes from the server and there is
// never a partial client-side merge to get wrong.
type CollectionController[R any, D any] struct {
	gw       CollectionGateway[R, D]
	resource string
	idOf     func(R) int
	toDraft  func(R) D

	loaded bool
	items  []R

	mode      Mode
	editingID *int
	form      D

	pendingDelete *int
	notice        string
}

func NewCollectionController[R any, D any](
	gw CollectionGateway[R, D],
	resource string,
	idOf func(R) int,
	toDraft func(R) D,
) *CollectionController[R, D] {
	return &CollectionController[R, D]{
		gw:       gw,
		resource: resource,
		idOf:     idOf,
		toDraft:  toDraft,
	}
}

func (c *CollectionController[R, D]) Items() []R {
	return c.items
}

func (c *CollectionController[R, D]) Loaded() bool {
	return c.loaded
}

func (c *CollectionController[R, D]) Mode() Mode {
	return c.mode
}

// EditingID returns the id under edit, or false when the open form is a new
// item.
func (c *CollectionController[R, D]) EditingID() (int, bool) {
	if c.editingID == nil {
		return 0, false
	}
	return *c.editingID, true
}

// Form returns the current form defaults: empty for a new item, a copy of the
// selected item's values after BeginEdit.
func (c *CollectionController[R, D]) Form() D {
	return c.form
}

// Notice returns the last user-facing message and clears it.
func (c *CollectionController[R, D]) Notice() string {
	n := c.notice
	c.notice = ""
	return n
}

// FetchAll replaces the local list wholesale with the server's. On failure
// the previous list is kept as-is.
func (c *CollectionController[R, D]) FetchAll(ctx context.Context) error {
	items, err := c.gw.List(ctx)
	if err != nil {
		log.Debug().Err(err).Str("resource", c.resource).Msg("list fetch failed")
		c.notice = fmt.Sprintf("failed to fetch %s list: %s", c.resource, err)
		return err
	}
	c.items = items
	c.loaded = true
	return nil
}

func (c *CollectionController[R, D]) BeginCreate() {
	var empty D
	c.form = empty
	c.editingID = nil
	c.mode = ModeEditing
}

// BeginEdit copies the selected item's values into the form.
func (c *CollectionController[R, D]) BeginEdit(id int) error {
	for _, item := range c.items {
		if c.idOf(item) == id {
			c.form = c.toDraft(item)
			c.editingID = &id
			c.mode = ModeEditing
			return nil
		}
	}
	return fmt.Errorf("no %s with id %d", c.resource, id)
}

func (c *CollectionController[R, D]) CancelEdit() {
	var empty D
	c.form = empty
	c.editingID = nil
	c.mode = ModeViewing
}

// Submit creates or updates depending on whether an id is under edit, then
// re-synchronizes through a full fetch rather than patching the list locally.
// On failure the form stays open with the operator's values intact.
func (c *CollectionController[R, D]) Submit(ctx context.Context, draft D) error {
	c.mode = ModeSubmitting
	c.form = draft

	var err error
	if c.editingID != nil {
		_, err = c.gw.Update(ctx, *c.editingID, draft)
	} else {
		_, err = c.gw.Create(ctx, draft)
	}

	if err != nil {
		log.Debug().Err(err).Str("resource", c.resource).Msg("submit failed")
		c.mode = ModeEditing
		c.notice = fmt.Sprintf("failed to save %s: %s", c.resource, err)
		return err
	}

	if err := c.FetchAll(ctx); err != nil {
		// The write went through; only the refresh failed. Close the form
		// and let the stale list stand until the next fetch.
		c.CancelEdit()
		return err
	}

	c.CancelEdit()
	c.notice = c.resource + " saved"
	return nil
}

// RequestDelete opens the confirmation sub-state. No network call happens
// until ConfirmDelete.
func (c *CollectionController[R, D]) RequestDelete(id int) error {
	for _, item := range c.items {
		if c.idOf(item) == id {
			c.pendingDelete = &id
			return nil
		}
	}
	return fmt.Errorf("no %s with id %d", c.resource, id)
}

// PendingDelete returns the id awaiting confirmation, if any.
func (c *CollectionController[R, D]) PendingDelete() (int, bool) {
	if c.pendingDelete == nil {
		return 0, false
	}
	return *c.pendingDelete, true
}

func (c *CollectionController[R, D]) CancelDelete() {
	c.pendingDelete = nil
}

// ConfirmDelete issues the DELETE for the pending id, then re-fetches. The
// confirmation sub-state closes either way.
func (c *CollectionController[R, D]) ConfirmDelete(ctx context.Context) error {
	if c.pendingDelete == nil {
		return fmt.Errorf("no pending %s deletion", c.resource)
	}
	id := *c.pendingDelete
	c.pendingDelete = nil

	if err := c.gw.Delete(ctx, id); err != nil {
		log.Debug().Err(err).Str("resource", c.resource).Int("id", id).Msg("delete failed")
		c.notice = fmt.Sprintf("failed to delete %s %d: %s", c.resource, id, err)
		return err
	}

	if err := c.FetchAll(ctx); err != nil {
		return err
	}
	c.notice = fmt.Sprintf("%s %d deleted", c.resource, id)
	return nil
}
