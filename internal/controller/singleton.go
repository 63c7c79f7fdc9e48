package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/duartecoelho/folioctl/internal/api"
	"github.com/duartecoelho/folioctl/internal/domain"
)

// ProfileGateway is the slice of the API the profile controller needs.
type ProfileGateway interface {
	Get(ctx context.Context) (domain.PersonalInformation, error)
	Create(ctx context.Context, info domain.PersonalInformation) (domain.PersonalInformation, error)
	Update(ctx context.Context, info domain.PersonalInformation) (domain.PersonalInformation, error)
}

type ProfileState int

const (
	ProfileLoading ProfileState = iota
	// ProfileAbsent means the API answered 404: the profile has not been
	// created yet. It is a normal state, not a failure, and it routes the
	// next submit to create instead of update.
	ProfileAbsent
	ProfilePresent
	ProfileSubmitting
	ProfileFailed
)

// ProfileController manages the singleton profile resource. The only tricky
// part of its lifecycle is existence: there is no id, so present-vs-absent is
// decided by the fetch and remembered here to pick between create and update.
type ProfileController struct {
	gw     ProfileGateway
	state  ProfileState
	info   domain.PersonalInformation
	notice string
}

func NewProfileController(gw ProfileGateway) *ProfileController {
	return &ProfileController{gw: gw, state: ProfileLoading}
}

func (c *ProfileController) State() ProfileState {
	return c.state
}

func (c *ProfileController) Info() domain.PersonalInformation {
	return c.info
}

// Notice returns the last user-facing message and clears it.
func (c *ProfileController) Notice() string {
	n := c.notice
	c.notice = ""
	return n
}

func (c *ProfileController) Fetch(ctx context.Context) error {
	c.state = ProfileLoading
	info, err := c.gw.Get(ctx)
	switch {
	case errors.Is(err, api.ErrNotFound):
		c.state = ProfileAbsent
		c.info = domain.PersonalInformation{}
		return nil
	case err != nil:
		c.state = ProfileFailed
		c.notice = fmt.Sprintf("failed to fetch personal information: %s", err)
		return err
	}

	c.state = ProfilePresent
	c.info = info
	return nil
}

// Submit routes to create when the profile is absent and update otherwise. On
// success the submitted value is trusted as canonical without a re-fetch; on
// failure the controller falls back to its previous state and the caller's
// form data stays whatever it was.
func (c *ProfileController) Submit(ctx context.Context, info domain.PersonalInformation) error {
	prev := c.state
	c.state = ProfileSubmitting

	var (
		saved domain.PersonalInformation
		err   error
	)
	if prev == ProfileAbsent {
		saved, err = c.gw.Create(ctx, info)
	} else {
		saved, err = c.gw.Update(ctx, info)
	}

	if err != nil {
		log.Debug().Err(err).Msg("profile submit failed")
		c.state = prev
		c.notice = fmt.Sprintf("failed to save personal information: %s", err)
		return err
	}

	c.state = ProfilePresent
	c.info = saved
	if prev == ProfileAbsent {
		c.notice = "personal information created"
	} else {
		c.notice = "personal information updated"
	}
	return nil
}
