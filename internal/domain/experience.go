package domain

// Experience is one entry of the work history collection. The id is assigned by
// the server on creation and never by this client.
type Experience struct {
	ID          int      `json:"id"`
	CompanyName string   `json:"companyName"`
	CompanyLogo string   `json:"companyLogo"`
	Role        string   `json:"role"`
	StartDate   string   `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Detail      string   `json:"detail"`
	UsedSkills  []string `json:"usedSkills"`
}

// ExperienceDraft is the create/update payload: an Experience minus its id.
type ExperienceDraft struct {
	CompanyName string   `json:"companyName"`
	CompanyLogo string   `json:"companyLogo"`
	Role        string   `json:"role"`
	StartDate   string   `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Detail      string   `json:"detail"`
	UsedSkills  []string `json:"usedSkills"`
}

func (e Experience) Draft() ExperienceDraft {
	return ExperienceDraft{
		CompanyName: e.CompanyName,
		CompanyLogo: e.CompanyLogo,
		Role:        e.Role,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Detail:      e.Detail,
		UsedSkills:  append([]string(nil), e.UsedSkills...),
	}
}

// Period renders the date range of the position. A nil end date means the
// position is ongoing and renders as "Present".
func (e Experience) Period() string {
	end := "Present"
	if e.EndDate != nil {
		end = *e.EndDate
	}
	return e.StartDate + " - " + end
}
