package domain

// PersonalInformation is the singleton profile resource. It carries no id; the
// API answers 404 on GET while it has not been created yet, and that absence is
// the only existence signal there is.
type PersonalInformation struct {
	Name             string            `json:"name"`
	Surname          string            `json:"surname"`
	Job              string            `json:"job"`
	Summary          string            `json:"summary"`
	Biography        string            `json:"biography"`
	Skills           []string          `json:"skills"`
	SocialMediaLinks []SocialMediaLink `json:"socialMediaLinks"`
	PersonalImageURL string            `json:"personalImageUrl"`
}

type SocialMediaLink struct {
	Logo string `json:"logo"`
	URL  string `json:"url"`
}

// KnownPlatforms is the fixed vocabulary of social platforms the edit form
// always offers, in display order. Anything else is a custom label.
var KnownPlatforms = []string{
	"Email",
	"Github",
	"Instagram",
	"YouTube",
	"LinkedIn",
	"Twitter",
	"Facebook",
}

func IsKnownPlatform(logo string) bool {
	for _, p := range KnownPlatforms {
		if p == logo {
			return true
		}
	}
	return false
}
