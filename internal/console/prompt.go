package console

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/duartecoelho/folioctl/internal/validate"
)

// promptLine asks for one field, offering the current value as the default
// kept on empty input.
func (c *Console) promptLine(label, current string) (string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	c.rl.SetPrompt(prompt + ": ")
	defer c.rl.SetPrompt("folioctl> ")

	line, err := c.rl.Readline()
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current, nil
	}
	return line, nil
}

func (c *Console) promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (c *Console) confirm(question string) (bool, error) {
	c.rl.SetPrompt(question + " [y/N]: ")
	defer c.rl.SetPrompt("folioctl> ")

	line, err := c.rl.Readline()
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func (c *Console) cmdLogin(ctx context.Context) error {
	username, err := c.promptLine("Username", "")
	if err != nil {
		return err
	}
	password, err := c.promptPassword("Password")
	if err != nil {
		return err
	}
	if err := validate.Credentials(username, password); err != nil {
		return err
	}

	if err := c.guard.Login(ctx, username, password); err != nil {
		return err
	}
	fmt.Println("logged in")
	return nil
}
