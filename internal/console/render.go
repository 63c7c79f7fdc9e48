package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/duartecoelho/folioctl/internal/domain"
	"github.com/duartecoelho/folioctl/internal/export"
)

func renderProfile(info domain.PersonalInformation) {
	fmt.Printf("%s %s - %s\n", info.Name, info.Surname, info.Job)
	if info.Summary != "" {
		fmt.Println(info.Summary)
	}
	if info.Biography != "" {
		fmt.Println(info.Biography)
	}
	if len(info.Skills) > 0 {
		fmt.Println("skills:", strings.Join(info.Skills, ", "))
	}
	for _, link := range info.SocialMediaLinks {
		fmt.Printf("  %-10s %s\n", link.Logo, link.URL)
	}
	if info.PersonalImageURL != "" {
		fmt.Println("image:", info.PersonalImageURL)
	}
}

func renderExperience(e domain.Experience) {
	fmt.Printf("[%d] %s - %s (%s)\n", e.ID, e.CompanyName, e.Role, e.Period())
	if e.Detail != "" {
		fmt.Println("    ", e.Detail)
	}
	if len(e.UsedSkills) > 0 {
		fmt.Println("    skills:", strings.Join(e.UsedSkills, ", "))
	}
}

func renderProject(p domain.Project) {
	fmt.Printf("[%d] %s\n", p.ID, p.Name)
	if p.Detail != "" {
		fmt.Println("    ", p.Detail)
	}
	if len(p.Skills) > 0 {
		fmt.Println("    skills:", strings.Join(p.Skills, ", "))
	}
	if p.URL != "" {
		fmt.Println("    url:", p.URL)
	}
}

// cmdPreview fetches the three resources concurrently, the way the public
// page does, and prints the joined result.
func (c *Console) cmdPreview(ctx context.Context) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	view, err := c.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("portfolio fetch failed: %w", err)
	}

	if view.ProfileExists {
		renderProfile(view.Profile)
	} else {
		fmt.Println("(no personal information yet)")
	}
	fmt.Printf("\nExperiences (%d)\n", len(view.Experiences))
	for _, e := range view.Experiences {
		renderExperience(e)
	}
	fmt.Printf("\nProjects (%d)\n", len(view.Projects))
	for _, p := range view.Projects {
		renderProject(p)
	}
	return nil
}

func (c *Console) cmdExport(ctx context.Context, path string) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	snap, err := export.Take(ctx, c.loader)
	if err != nil {
		return err
	}
	if err := export.Write(snap, path); err != nil {
		return err
	}
	fmt.Println("snapshot written to", path)
	return nil
}
