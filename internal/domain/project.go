package domain

// Project is one entry of the projects collection. Same lifecycle as
// Experience; the two collections do not share an id namespace.
type Project struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Detail  string   `json:"detail"`
	Skills  []string `json:"skills"`
	LogoURL string   `json:"logoUrl"`
	URL     string   `json:"url"`
}

// ProjectDraft is the create/update payload: a Project minus its id.
type ProjectDraft struct {
	Name    string   `json:"name"`
	Detail  string   `json:"detail"`
	Skills  []string `json:"skills"`
	LogoURL string   `json:"logoUrl"`
	URL     string   `json:"url"`
}

func (p Project) Draft() ProjectDraft {
	return ProjectDraft{
		Name:    p.Name,
		Detail:  p.Detail,
		Skills:  append([]string(nil), p.Skills...),
		LogoURL: p.LogoURL,
		URL:     p.URL,
	}
}
