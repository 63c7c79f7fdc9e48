package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/duartecoelho/folioctl/internal/domain"
)

// fakeExperienceGateway is an in-memory CollectionGateway with call counters,
// so tests can assert which operations actually hit the network layer.
type fakeExperienceGateway struct {
	items  []domain.Experience
	nextID int

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	failNext error
}

func newFakeExperienceGateway(items ...domain.Experience) *fakeExperienceGateway {
	next := 1
	for _, e := range items {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	return &fakeExperienceGateway{items: items, nextID: next}
}

func (f *fakeExperienceGateway) takeFailure() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeExperienceGateway) List(ctx context.Context) ([]domain.Experience, error) {
	f.listCalls++
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	return append([]domain.Experience(nil), f.items...), nil
}

func (f *fakeExperienceGateway) Create(ctx context.Context, draft domain.ExperienceDraft) (domain.Experience, error) {
	f.createCalls++
	if err := f.takeFailure(); err != nil {
		return domain.Experience{}, err
	}
	e := domain.Experience{
		ID:          f.nextID,
		CompanyName: draft.CompanyName,
		CompanyLogo: draft.CompanyLogo,
		Role:        draft.Role,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Detail:      draft.Detail,
		UsedSkills:  draft.UsedSkills,
	}
	f.nextID++
	f.items = append(f.items, e)
	return e, nil
}

func (f *fakeExperienceGateway) Update(ctx context.Context, id int, draft domain.ExperienceDraft) (domain.Experience, error) {
	f.updateCalls++
	if err := f.takeFailure(); err != nil {
		return domain.Experience{}, err
	}
	for i, e := range f.items {
		if e.ID == id {
			updated := domain.Experience{
				ID:          id,
				CompanyName: draft.CompanyName,
				CompanyLogo: draft.CompanyLogo,
				Role:        draft.Role,
				StartDate:   draft.StartDate,
				EndDate:     draft.EndDate,
				Detail:      draft.Detail,
				UsedSkills:  draft.UsedSkills,
			}
			f.items[i] = updated
			return updated, nil
		}
	}
	return domain.Experience{}, errors.New("not found")
}

func (f *fakeExperienceGateway) Delete(ctx context.Context, id int) error {
	f.deleteCalls++
	if err := f.takeFailure(); err != nil {
		return err
	}
	for i, e := range f.items {
		if e.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func newExperienceController(gw *fakeExperienceGateway) *CollectionController[domain.Experience, domain.ExperienceDraft] {
	return NewCollectionController(
		gw,
		"experience",
		func(e domain.Experience) int { return e.ID },
		domain.Experience.Draft,
	)
}

func TestFetchAllReplacesWholesale(t *testing.T) {
	gw := newFakeExperienceGateway(
		domain.Experience{ID: 1, CompanyName: "A"},
		domain.Experience{ID: 2, CompanyName: "B"},
	)
	c := newExperienceController(gw)

	if err := c.FetchAll(ctx); err != nil {
		t.Fatal(err)
	}
	if len(c.Items()) != 2 {
		t.Fatalf("expected 2 items, got %d", len(c.Items()))
	}

	// The server dropped one behind our back; the next fetch must not merge.
	gw.items = gw.items[:1]
	if err := c.FetchAll(ctx); err != nil {
		t.Fatal(err)
	}
	if len(c.Items()) != 1 {
		t.Errorf("expected the local list replaced wholesale, got %d items", len(c.Items()))
	}
}

func TestFetchAllFailureKeepsOldList(t *testing.T) {
	gw := newFakeExperienceGateway(domain.Experience{ID: 1, CompanyName: "A"})
	c := newExperienceController(gw)

	if err := c.FetchAll(ctx); err != nil {
		t.Fatal(err)
	}
	gw.failNext = errors.New("boom")
	if err := c.FetchAll(ctx); err == nil {
		t.Fatal("expected the failure to be reported")
	}
	if len(c.Items()) != 1 {
		t.Error("a failed fetch must leave the cached list alone")
	}
	if c.Notice() == "" {
		t.Error("expected a user-facing message")
	}
}

func TestSubmitCreateThenResync(t *testing.T) {
	gw := newFakeExperienceGateway()
	c := newExperienceController(gw)
	if err := c.FetchAll(ctx); err != nil {
		t.Fatal(err)
	}

	c.BeginCreate()
	if _, editing := c.EditingID(); editing {
		t.Fatal("a create form must have no editing id")
	}

	err := c.Submit(ctx, domain.ExperienceDraft{CompanyName: "Initech", StartDate: "2020-01-01"})
	if err != nil {
		t.Fatal(err)
	}

	if gw.createCalls != 1 || gw.updateCalls != 0 {
		t.Errorf("expected one create and no update, got %d/%d", gw.createCalls, gw.updateCalls)
	}
	if gw.listCalls != 2 {
		t.Errorf("expected a full re-fetch after the create, got %d list calls", gw.listCalls)
	}
	if c.Mode() != ModeViewing {
		t.Errorf("expected the form closed, got mode %v", c.Mode())
	}
	if len(c.Items()) != 1 || c.Items()[0].ID == 0 {
		t.Errorf("expected the new item with a server id in the list, got %+v", c.Items())
	}
	if diff := cmp.Diff(domain.ExperienceDraft{}, c.Form()); diff != "" {
		t.Error("expected form defaults cleared:", diff)
	}
}

func TestSubmitUpdateUsesEditingID(t *testing.T) {
	gw := newFakeExperienceGateway(domain.Experience{ID: 7, CompanyName: "Initech", Role: "Dev", StartDate: "2020-01-01"})
	c := newExperienceController(gw)
	if err := c.FetchAll(ctx); err != nil {
		t.Fatal(err)
	}

	if err := c.BeginEdit(7); err != nil {
		t.Fatal(err)
	}
	form := c.Form()
	if form.CompanyName != "Initech" {
		t.Errorf("expected the item's values copied into the form, got %+v", form)
	}

	form.Role = "Senior Dev"
	if err := c.Submit(ctx, form); err != nil {
		t.Fatal(err)
	}
	if gw.updateCalls != 1 || gw.createCalls != 0 {
		t.Errorf("expected one update and no create, got %d/%d", gw.updateCalls, gw.createCalls)
	}
	if c.Items()[0].Role != "Senior Dev" {
		t.Errorf("expected the re-fetched list to carry the update, got %+v", c.Items()[0])
	}
}

func TestSubmitFailureKeepsFormOpen(t *testing.T) {
	gw := newFakeExperienceGateway()
	c := newExperienceController(gw)
	if err := c.FetchAll(ctx); err != nil {
		t.Fatal(err)
	}

	c.BeginCreate()
	draft := domain.ExperienceDraft{CompanyName: "Initech"}
	gw.failNext = errors.New("boom")
	if err := c.Submit(ctx, draft); err == nil {
		t.Fatal("expected the failure to be reported")
	}

	if c.Mode() != ModeEditing {
		t.Errorf("a failed submit must keep the form open, got mode %v", c.Mode())
	}
	if diff := cmp.Diff(draft, c.Form()); diff != "" {
		t.Error("a failed submit must not discard entered values:", diff)
	}
	if len(c.Items()) != 0 {
		t.Error("a failed submit must not touch the list")
	}
}

func TestBeginEditUnknownID(t *testing.T) {
	c := newExperienceController(newFakeExperienceGateway())
	if err := c.BeginEdit(42); err == nil {
		t.Error("expected an error for an unknown id")
	}
}

func TestDeleteConfirmation(t *testing.T) {
	gw := newFakeExperienceGateway(
		domain.Experience{ID: 1, CompanyName: "A"},
		domain.Experience{ID: 2, CompanyName: "B"},
	)
	c := newExperienceController(gw)
	if err := c.FetchAll(ctx); err != nil {
		t.Fatal(err)
	}

	t.Run("cancel issues no call", func(t *testing.T) {
		if err := c.RequestDelete(1); err != nil {
			t.Fatal(err)
		}
		c.CancelDelete()
		if gw.deleteCalls != 0 {
			t.Error("cancel must not reach the network")
		}
		if len(c.Items()) != 2 {
			t.Error("cancel must leave the list unchanged")
		}
		if _, pending := c.PendingDelete(); pending {
			t.Error("cancel must close the confirmation")
		}
	})

	t.Run("confirm removes exactly the target", func(t *testing.T) {
		if err := c.RequestDelete(1); err != nil {
			t.Fatal(err)
		}
		if err := c.ConfirmDelete(ctx); err != nil {
			t.Fatal(err)
		}
		if gw.deleteCalls != 1 {
			t.Errorf("expected one delete call, got %d", gw.deleteCalls)
		}
		if len(c.Items()) != 1 || c.Items()[0].ID != 2 {
			t.Errorf("expected only id 2 to remain, got %+v", c.Items())
		}
	})

	t.Run("confirm without request", func(t *testing.T) {
		if err := c.ConfirmDelete(ctx); err == nil {
			t.Error("expected an error when nothing is pending")
		}
	})
}

func TestRequestDeleteUnknownID(t *testing.T) {
	c := newExperienceController(newFakeExperienceGateway())
	if err := c.RequestDelete(42); err == nil {
		t.Error("expected an error for an unknown id")
	}
}
