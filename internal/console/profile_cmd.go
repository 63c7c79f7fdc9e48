package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/duartecoelho/folioctl/internal/controller"
	"github.com/duartecoelho/folioctl/internal/domain"
	"github.com/duartecoelho/folioctl/internal/forms"
)

func (c *Console) cmdProfile(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: profile show|edit")
	}
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "show":
		return c.profileShow(ctx)
	case "edit":
		return c.profileEdit(ctx)
	default:
		return fmt.Errorf("unknown profile subcommand %q", args[0])
	}
}

func (c *Console) profileShow(ctx context.Context) error {
	if err := c.profile.Fetch(ctx); err != nil {
		fmt.Println(c.profile.Notice())
		return nil
	}
	if c.profile.State() == controller.ProfileAbsent {
		fmt.Println("no personal information yet; run 'profile edit' to create it")
		return nil
	}
	renderProfile(c.profile.Info())
	return nil
}

func (c *Console) profileEdit(ctx context.Context) error {
	if err := c.profile.Fetch(ctx); err != nil {
		fmt.Println(c.profile.Notice())
		return nil
	}

	if c.profile.State() == controller.ProfileAbsent {
		fmt.Println("creating personal information")
	} else {
		fmt.Println("updating personal information")
	}

	info := c.profile.Info()
	var err error
	if info.Name, err = c.promptLine("Name", info.Name); err != nil {
		return err
	}
	if info.Surname, err = c.promptLine("Surname", info.Surname); err != nil {
		return err
	}
	if info.Job, err = c.promptLine("Job", info.Job); err != nil {
		return err
	}
	if info.Summary, err = c.promptLine("Summary", info.Summary); err != nil {
		return err
	}
	if info.Biography, err = c.promptLine("Biography", info.Biography); err != nil {
		return err
	}
	if info.PersonalImageURL, err = c.promptLine("Personal image URL", info.PersonalImageURL); err != nil {
		return err
	}

	skills, err := c.promptTags("Skills (comma-separated)", info.Skills)
	if err != nil {
		return err
	}
	info.Skills = skills

	links, err := c.editSocialLinks(forms.NewSocialLinks(info.SocialMediaLinks))
	if err != nil {
		return err
	}
	info.SocialMediaLinks = links

	if err := c.profile.Submit(ctx, info); err != nil {
		fmt.Println(c.profile.Notice())
		return nil
	}
	fmt.Println(c.profile.Notice())
	return nil
}

// promptTags edits a tag list through one comma-separated buffer; the commit
// happens once, when the line is entered.
func (c *Console) promptTags(label string, current []string) ([]string, error) {
	field := forms.NewTagField(current)
	text, err := c.promptLine(label, field.Text())
	if err != nil {
		return nil, err
	}
	field.SetText(text)
	return field.Commit(), nil
}

// editSocialLinks runs the row editor for social-media entries. Fixed
// platforms are always listed and keep their label; custom rows can be added,
// renamed and removed.
func (c *Console) editSocialLinks(links *forms.SocialLinks) ([]domain.SocialMediaLink, error) {
	fmt.Println("Social media links ('help' for row commands):")
	for {
		for i, row := range links.Rows() {
			lock := " "
			if row.Locked {
				lock = "*"
			}
			fmt.Printf("  %2d %s %-10s %s\n", i, lock, row.Logo, row.URL)
		}

		line, err := c.promptLine("link command", "done")
		if err != nil {
			return nil, err
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "done":
			return links.Links(), nil
		case "help":
			fmt.Print(`  url <row> <value>    set a row's URL (empty value clears it)
  logo <row> <value>   rename a custom row
  add <logo> <url>     append a custom link
  rm <row>             remove a custom row
  done                 finish editing
`)
		case "url", "logo", "rm":
			if len(args) < 2 {
				fmt.Println("  missing row number")
				continue
			}
			index, convErr := strconv.Atoi(args[1])
			if convErr != nil {
				fmt.Println(" ", convErr)
				continue
			}
			var opErr error
			switch args[0] {
			case "url":
				opErr = links.SetURL(index, strings.Join(args[2:], " "))
			case "logo":
				opErr = links.SetLogo(index, strings.Join(args[2:], " "))
			case "rm":
				opErr = links.Remove(index)
			}
			if opErr != nil {
				fmt.Println(" ", opErr)
			}
		case "add":
			if len(args) < 3 {
				fmt.Println("  usage: add <logo> <url>")
				continue
			}
			links.AppendCustom(args[1], args[2])
		default:
			fmt.Printf("  unknown row command %q\n", args[0])
		}
	}
}
