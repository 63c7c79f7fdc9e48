package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/duartecoelho/folioctl/internal/controller"
	"github.com/duartecoelho/folioctl/internal/domain"
	"github.com/duartecoelho/folioctl/internal/validate"
)

// runCollection handles list/add/edit/delete for one collection resource. The
// flow is the same for experiences and projects; only the form prompts and the
// rendering differ.
func runCollection[R any, D any](
	ctx context.Context,
	c *Console,
	args []string,
	ctl *controller.CollectionController[R, D],
	resource string,
	promptForm func(D) (D, error),
	render func(R),
) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s list|add|edit <id>|delete <id>", resource)
	}
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		if err := ctl.FetchAll(ctx); err != nil {
			fmt.Println(ctl.Notice())
			return nil
		}
		if len(ctl.Items()) == 0 {
			fmt.Printf("no %s entries\n", resource)
			return nil
		}
		for _, item := range ctl.Items() {
			render(item)
		}
		return nil

	case "add":
		if err := ctl.FetchAll(ctx); err != nil {
			fmt.Println(ctl.Notice())
			return nil
		}
		ctl.BeginCreate()
		return submitForm(ctx, c, ctl, promptForm)

	case "edit":
		id, err := idArg(args, resource)
		if err != nil {
			return err
		}
		if err := ctl.FetchAll(ctx); err != nil {
			fmt.Println(ctl.Notice())
			return nil
		}
		if err := ctl.BeginEdit(id); err != nil {
			return err
		}
		return submitForm(ctx, c, ctl, promptForm)

	case "delete":
		id, err := idArg(args, resource)
		if err != nil {
			return err
		}
		if err := ctl.FetchAll(ctx); err != nil {
			fmt.Println(ctl.Notice())
			return nil
		}
		if err := ctl.RequestDelete(id); err != nil {
			return err
		}
		ok, err := c.confirm(fmt.Sprintf("delete %s %d?", resource, id))
		if err != nil {
			return err
		}
		if !ok {
			ctl.CancelDelete()
			fmt.Println("cancelled")
			return nil
		}
		if err := ctl.ConfirmDelete(ctx); err != nil {
			fmt.Println(ctl.Notice())
			return nil
		}
		fmt.Println(ctl.Notice())
		return nil

	default:
		return fmt.Errorf("unknown %s subcommand %q", resource, args[0])
	}
}

func submitForm[R any, D any](
	ctx context.Context,
	c *Console,
	ctl *controller.CollectionController[R, D],
	promptForm func(D) (D, error),
) error {
	draft, err := promptForm(ctl.Form())
	if err != nil {
		// Prompt aborted; nothing was sent, so just close the form.
		ctl.CancelEdit()
		return err
	}

	if err := ctl.Submit(ctx, draft); err != nil {
		fmt.Println(ctl.Notice())
		return nil
	}
	fmt.Println(ctl.Notice())
	return nil
}

func idArg(args []string, resource string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("usage: %s %s <id>", resource, args[0])
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, errors.New("id must be a number")
	}
	return id, nil
}

func (c *Console) promptExperience(draft domain.ExperienceDraft) (domain.ExperienceDraft, error) {
	var err error
	if draft.CompanyName, err = c.promptLine("Company name", draft.CompanyName); err != nil {
		return draft, err
	}
	if draft.CompanyLogo, err = c.promptLine("Company logo URL", draft.CompanyLogo); err != nil {
		return draft, err
	}
	if draft.Role, err = c.promptLine("Role", draft.Role); err != nil {
		return draft, err
	}
	for {
		if draft.StartDate, err = c.promptLine("Start date (YYYY-MM-DD)", draft.StartDate); err != nil {
			return draft, err
		}
		vErr := validate.Date(draft.StartDate)
		if vErr == nil {
			break
		}
		fmt.Println(" ", vErr)
	}

	current := ""
	if draft.EndDate != nil {
		current = *draft.EndDate
	}
	for {
		end, promptErr := c.promptLine("End date ('-' for ongoing)", current)
		if promptErr != nil {
			return draft, promptErr
		}
		if end == "" || end == "-" {
			draft.EndDate = nil
			break
		}
		if vErr := validate.Date(end); vErr != nil {
			fmt.Println(" ", vErr)
			continue
		}
		draft.EndDate = &end
		break
	}

	if draft.Detail, err = c.promptLine("Detail", draft.Detail); err != nil {
		return draft, err
	}
	skills, err := c.promptTags("Used skills (comma-separated)", draft.UsedSkills)
	if err != nil {
		return draft, err
	}
	draft.UsedSkills = skills
	return draft, nil
}

func (c *Console) promptProject(draft domain.ProjectDraft) (domain.ProjectDraft, error) {
	var err error
	if draft.Name, err = c.promptLine("Name", draft.Name); err != nil {
		return draft, err
	}
	if draft.Detail, err = c.promptLine("Detail", draft.Detail); err != nil {
		return draft, err
	}
	skills, err := c.promptTags("Skills (comma-separated)", draft.Skills)
	if err != nil {
		return draft, err
	}
	draft.Skills = skills
	if draft.LogoURL, err = c.promptLine("Logo URL", draft.LogoURL); err != nil {
		return draft, err
	}
	for {
		if draft.URL, err = c.promptLine("Project URL", draft.URL); err != nil {
			return draft, err
		}
		vErr := validate.URL(draft.URL)
		if vErr == nil {
			break
		}
		fmt.Println(" ", vErr)
	}
	return draft, nil
}
