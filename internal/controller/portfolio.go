package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/duartecoelho/folioctl/internal/api"
	"github.com/duartecoelho/folioctl/internal/domain"
)

// PortfolioView is the full site content as one value, the way the public
// renderer sees it.
type PortfolioView struct {
	Profile       domain.PersonalInformation
	ProfileExists bool
	Experiences   []domain.Experience
	Projects      []domain.Project
}

// PortfolioLoader fetches profile, experiences and projects concurrently and
// awaits them jointly: either all three arrive before the view is returned, or
// the first failure fails the load. A missing profile is not a failure; the
// view just marks it absent.
type PortfolioLoader struct {
	profile     ProfileGateway
	experiences CollectionGateway[domain.Experience, domain.ExperienceDraft]
	projects    CollectionGateway[domain.Project, domain.ProjectDraft]
}

func NewPortfolioLoader(
	profile ProfileGateway,
	experiences CollectionGateway[domain.Experience, domain.ExperienceDraft],
	projects CollectionGateway[domain.Project, domain.ProjectDraft],
) *PortfolioLoader {
	return &PortfolioLoader{
		profile:     profile,
		experiences: experiences,
		projects:    projects,
	}
}

func (l *PortfolioLoader) Load(ctx context.Context) (PortfolioView, error) {
	var (
		view PortfolioView
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		info, err := l.profile.Get(ctx)
		switch {
		case errors.Is(err, api.ErrNotFound):
			// Not created yet; render an empty profile.
		case err != nil:
			fail(err)
		default:
			view.Profile = info
			view.ProfileExists = true
		}
	}()
	go func() {
		defer wg.Done()
		items, err := l.experiences.List(ctx)
		if err != nil {
			fail(err)
			return
		}
		view.Experiences = items
	}()
	go func() {
		defer wg.Done()
		items, err := l.projects.List(ctx)
		if err != nil {
			fail(err)
			return
		}
		view.Projects = items
	}()
	wg.Wait()

	if len(errs) > 0 {
		return PortfolioView{}, errors.Join(errs...)
	}
	return view, nil
}
