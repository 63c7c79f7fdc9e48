package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/duartecoelho/folioctl/internal/domain"
)

// fakePortfolioAPI is an in-memory stand-in for the content API, serving the
// same routes with the same 404-as-absence behavior.
type fakePortfolioAPI struct {
	mu          sync.Mutex
	profile     *domain.PersonalInformation
	experiences map[int]domain.Experience
	nextID      int
}

func newFakePortfolioAPI() *fakePortfolioAPI {
	return &fakePortfolioAPI{
		experiences: map[int]domain.Experience{},
		nextID:      1,
	}
}

func (f *fakePortfolioAPI) server() *httptest.Server {
	r := chi.NewRouter()

	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/login", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/personal-information", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.profile == nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(f.profile)
	})
	r.Post("/personal-information", f.putProfile)
	r.Put("/personal-information", f.putProfile)

	r.Get("/experience", func(w http.ResponseWriter, req *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		items := make([]domain.Experience, 0, len(f.experiences))
		for id := 1; id < f.nextID; id++ {
			if e, ok := f.experiences[id]; ok {
				items = append(items, e)
			}
		}
		json.NewEncoder(w).Encode(items)
	})
	r.Post("/experience", func(w http.ResponseWriter, req *http.Request) {
		var draft domain.ExperienceDraft
		if err := json.NewDecoder(req.Body).Decode(&draft); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		e := experienceFromDraft(f.nextID, draft)
		f.experiences[f.nextID] = e
		f.nextID++
		json.NewEncoder(w).Encode(e)
	})
	r.Put("/experience/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(req, "id"))
		var draft domain.ExperienceDraft
		if err := json.NewDecoder(req.Body).Decode(&draft); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.experiences[id]; !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		e := experienceFromDraft(id, draft)
		f.experiences[id] = e
		json.NewEncoder(w).Encode(e)
	})
	r.Delete("/experience/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(req, "id"))
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.experiences[id]; !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		delete(f.experiences, id)
		w.WriteHeader(http.StatusNoContent)
	})

	return httptest.NewServer(r)
}

func (f *fakePortfolioAPI) putProfile(w http.ResponseWriter, req *http.Request) {
	var info domain.PersonalInformation
	if err := json.NewDecoder(req.Body).Decode(&info); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = &info
	w.WriteHeader(http.StatusOK)
}

func experienceFromDraft(id int, d domain.ExperienceDraft) domain.Experience {
	return domain.Experience{
		ID:          id,
		CompanyName: d.CompanyName,
		CompanyLogo: d.CompanyLogo,
		Role:        d.Role,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Detail:      d.Detail,
		UsedSkills:  d.UsedSkills,
	}
}
