// Package export writes and reads YAML snapshots of the whole portfolio, as a
// backup the management UI never offered.
package export

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/duartecoelho/folioctl/internal/controller"
	"github.com/duartecoelho/folioctl/internal/domain"
)

type Snapshot struct {
	Profile     *domain.PersonalInformation `yaml:"profile,omitempty"`
	Experiences []domain.Experience         `yaml:"experiences"`
	Projects    []domain.Project            `yaml:"projects"`
}

// Take loads the full portfolio through the joint loader and packs it into a
// snapshot. A not-yet-created profile exports as a missing key, not an empty
// struct.
func Take(ctx context.Context, loader *controller.PortfolioLoader) (Snapshot, error) {
	view, err := loader.Load(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading portfolio: %w", err)
	}

	snap := Snapshot{
		Experiences: view.Experiences,
		Projects:    view.Projects,
	}
	if view.ProfileExists {
		profile := view.Profile
		snap.Profile = &profile
	}
	return snap, nil
}

func Write(snap Snapshot, path string) error {
	out, err := yaml.Marshal(snap)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

func Read(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	if err := yaml.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return snap, nil
}
