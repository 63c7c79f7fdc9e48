// Package console is the operator-facing shell. It is presentation only:
// every invariant about sessions, resources and forms lives in the session,
// controller and forms packages; the console just prompts, dispatches and
// prints.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/duartecoelho/folioctl/internal/controller"
	"github.com/duartecoelho/folioctl/internal/domain"
	"github.com/duartecoelho/folioctl/internal/session"
)

type Console struct {
	rl          *readline.Instance
	guard       *session.Guard
	profile     *controller.ProfileController
	experiences *controller.CollectionController[domain.Experience, domain.ExperienceDraft]
	projects    *controller.CollectionController[domain.Project, domain.ProjectDraft]
	loader      *controller.PortfolioLoader
}

func New(
	guard *session.Guard,
	profile *controller.ProfileController,
	experiences *controller.CollectionController[domain.Experience, domain.ExperienceDraft],
	projects *controller.CollectionController[domain.Project, domain.ProjectDraft],
	loader *controller.PortfolioLoader,
) (*Console, error) {
	rl, err := readline.New("folioctl> ")
	if err != nil {
		return nil, err
	}
	return &Console{
		rl:          rl,
		guard:       guard,
		profile:     profile,
		experiences: experiences,
		projects:    projects,
		loader:      loader,
	}, nil
}

func (c *Console) Close() error {
	return c.rl.Close()
}

// Run reads commands until exit or EOF.
func (c *Console) Run(ctx context.Context) error {
	fmt.Println("folioctl - portfolio management console")
	fmt.Println("Type 'help' for commands, 'exit' to quit.")

	for {
		line, err := c.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}

		if err := c.dispatch(ctx, args); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func (c *Console) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "help":
		printHelp()
		return nil
	case "login":
		return c.cmdLogin(ctx)
	case "logout":
		return c.guard.Logout()
	case "whoami":
		fmt.Println("session:", c.guard.Status())
		return nil
	case "profile":
		return c.cmdProfile(ctx, args[1:])
	case "exp":
		return runCollection(ctx, c, args[1:], c.experiences, "experience", c.promptExperience, renderExperience)
	case "proj":
		return runCollection(ctx, c, args[1:], c.projects, "project", c.promptProject, renderProject)
	case "preview":
		return c.cmdPreview(ctx)
	case "export":
		if len(args) != 2 {
			return errors.New("usage: export <file>")
		}
		return c.cmdExport(ctx, args[1])
	default:
		return fmt.Errorf("unknown command %q; try 'help'", args[0])
	}
}

// ensureSession runs the guard probe for one protected command. When the
// stored pair is rejected the guard has already cleared it; the console's
// redirect is a hint to log in again.
func (c *Console) ensureSession(ctx context.Context) error {
	status, err := c.guard.Check(ctx)
	if err != nil {
		return fmt.Errorf("could not verify session: %w", err)
	}
	if status != session.StatusAuthenticated {
		return errors.New("not logged in; run 'login' first")
	}
	return nil
}

func printHelp() {
	fmt.Print(`Commands:
  login                      authenticate and store the credential pair
  logout                     drop the stored credentials
  whoami                     show session status
  profile show               display personal information
  profile edit               create or update personal information
  exp list                   list experiences
  exp add                    add an experience
  exp edit <id>              edit an experience
  exp delete <id>            delete an experience (asks for confirmation)
  proj list|add|edit|delete  same for projects
  preview                    fetch and display the whole portfolio
  export <file>              write a YAML snapshot of the portfolio
  exit                       quit
`)
}
