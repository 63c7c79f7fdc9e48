package forms

import (
	"fmt"

	"github.com/duartecoelho/folioctl/internal/domain"
)

// SocialRow is one editable social-media entry. Known-platform rows carry a
// locked label: only the URL can change, and the row cannot be removed, just
// cleared. Custom rows are fully editable and removable.
type SocialRow struct {
	Logo   string
	URL    string
	Locked bool
}

// SocialLinks is the edit model for a profile's social-media list. The rows
// always start with the full known-platform vocabulary, in order, whether or
// not the stored profile has them, so the operator sees every platform slot
// plus any custom entries.
type SocialLinks struct {
	rows []SocialRow
}

func NewSocialLinks(stored []domain.SocialMediaLink) *SocialLinks {
	byLogo := make(map[string]string, len(stored))
	for _, l := range stored {
		if domain.IsKnownPlatform(l.Logo) {
			byLogo[l.Logo] = l.URL
		}
	}

	rows := make([]SocialRow, 0, len(domain.KnownPlatforms)+len(stored))
	for _, platform := range domain.KnownPlatforms {
		rows = append(rows, SocialRow{Logo: platform, URL: byLogo[platform], Locked: true})
	}
	for _, l := range stored {
		if !domain.IsKnownPlatform(l.Logo) {
			rows = append(rows, SocialRow{Logo: l.Logo, URL: l.URL})
		}
	}
	return &SocialLinks{rows: rows}
}

func (s *SocialLinks) Rows() []SocialRow {
	return append([]SocialRow(nil), s.rows...)
}

// SetURL changes a row's URL. Works on any row; clearing a known-platform row
// to the empty string is how it is "removed".
func (s *SocialLinks) SetURL(index int, url string) error {
	if index < 0 || index >= len(s.rows) {
		return fmt.Errorf("index %d out of range [0, %d)", index, len(s.rows))
	}
	s.rows[index].URL = url
	return nil
}

// SetLogo changes a custom row's label. Known-platform labels are locked.
func (s *SocialLinks) SetLogo(index int, logo string) error {
	if index < 0 || index >= len(s.rows) {
		return fmt.Errorf("index %d out of range [0, %d)", index, len(s.rows))
	}
	if s.rows[index].Locked {
		return fmt.Errorf("%s is a fixed platform; its label cannot change", s.rows[index].Logo)
	}
	s.rows[index].Logo = logo
	return nil
}

func (s *SocialLinks) AppendCustom(logo, url string) {
	s.rows = append(s.rows, SocialRow{Logo: logo, URL: url})
}

// Remove deletes a custom row. Known-platform rows stay; clear their URL
// instead.
func (s *SocialLinks) Remove(index int) error {
	if index < 0 || index >= len(s.rows) {
		return fmt.Errorf("index %d out of range [0, %d)", index, len(s.rows))
	}
	if s.rows[index].Locked {
		return fmt.Errorf("%s cannot be removed, only cleared", s.rows[index].Logo)
	}
	s.rows = append(s.rows[:index], s.rows[index+1:]...)
	return nil
}

// Links is the committed sequence to store: known platforms with a non-empty
// URL in vocabulary order, then custom rows in their edited order.
func (s *SocialLinks) Links() []domain.SocialMediaLink {
	links := make([]domain.SocialMediaLink, 0, len(s.rows))
	for _, r := range s.rows {
		if r.Locked && r.URL == "" {
			continue
		}
		links = append(links, domain.SocialMediaLink{Logo: r.Logo, URL: r.URL})
	}
	return links
}
