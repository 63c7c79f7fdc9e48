package api

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/duartecoelho/folioctl/internal/domain"
)

func newTestGateways(t *testing.T) (*SingletonGateway[domain.PersonalInformation], *Gateway[domain.Experience, domain.ExperienceDraft], *fakePortfolioAPI) {
	t.Helper()
	fake := newFakePortfolioAPI()
	server := fake.server()
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL, &memStore{})
	profile := NewSingletonGateway[domain.PersonalInformation](client, "personal information", "/personal-information")
	experiences := NewGateway[domain.Experience, domain.ExperienceDraft](client, "experience", "/experience")
	return profile, experiences, fake
}

func TestSingletonGetAbsentIsNotFound(t *testing.T) {
	profile, _, _ := newTestGateways(t)

	_, err := profile.Get(ctx)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for a missing profile, got %v", err)
	}
}

func TestSingletonCreateThenGetVerbatim(t *testing.T) {
	profile, _, _ := newTestGateways(t)

	submitted := domain.PersonalInformation{
		Name:    "Ada",
		Surname: "Silva",
		Job:     "Engineer",
		Skills:  []string{"Go", "SQL"},
		SocialMediaLinks: []domain.SocialMediaLink{
			{Logo: "Github", URL: "https://github.com/ada"},
		},
	}
	if _, err := profile.Create(ctx, submitted); err != nil {
		t.Fatal(err)
	}

	fetched, err := profile.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(submitted, fetched); diff != "" {
		t.Error(diff)
	}
}

func TestCollectionCreateAssignsServerID(t *testing.T) {
	_, experiences, _ := newTestGateways(t)

	before, err := experiences.List(ctx)
	if err != nil {
		t.Fatal(err)
	}

	created, err := experiences.Create(ctx, domain.ExperienceDraft{
		CompanyName: "Initech",
		Role:        "Developer",
		StartDate:   "2020-01-01",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Error("expected a server-assigned id")
	}

	after, err := experiences.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(after) != len(before)+1 {
		t.Errorf("expected %d items, got %d", len(before)+1, len(after))
	}
	for _, e := range before {
		if e.ID == created.ID {
			t.Errorf("id %d was already in use", created.ID)
		}
	}
}

func TestCollectionUpdateIsIdempotent(t *testing.T) {
	_, experiences, _ := newTestGateways(t)

	created, err := experiences.Create(ctx, domain.ExperienceDraft{
		CompanyName: "Initech",
		Role:        "Developer",
		StartDate:   "2020-01-01",
	})
	if err != nil {
		t.Fatal(err)
	}

	draft := created.Draft()
	draft.Role = "Senior Developer"
	for range 2 {
		if _, err := experiences.Update(ctx, created.ID, draft); err != nil {
			t.Fatal(err)
		}
	}

	items, err := experiences.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item after repeated updates, got %d", len(items))
	}
	if items[0].Role != "Senior Developer" {
		t.Errorf("unexpected role %q", items[0].Role)
	}
}

func TestCollectionDeleteRemovesExactlyOne(t *testing.T) {
	_, experiences, _ := newTestGateways(t)

	first, err := experiences.Create(ctx, domain.ExperienceDraft{CompanyName: "A", StartDate: "2019-01-01"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := experiences.Create(ctx, domain.ExperienceDraft{CompanyName: "B", StartDate: "2021-01-01"})
	if err != nil {
		t.Fatal(err)
	}

	if err := experiences.Delete(ctx, first.ID); err != nil {
		t.Fatal(err)
	}

	items, err := experiences.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ID != second.ID {
		t.Errorf("expected only id %d to remain, got %+v", second.ID, items)
	}
}

func TestCollectionErrorsAreClassified(t *testing.T) {
	_, experiences, _ := newTestGateways(t)

	_, err := experiences.Update(ctx, 999, domain.ExperienceDraft{CompanyName: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound updating a missing id, got %v", err)
	}

	err = experiences.Delete(ctx, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting a missing id, got %v", err)
	}
}
