package console

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/github/gh-progress/pkg/tty"
)

// PromptInput shows an interactive text input prompt using huh.
// The input starts with defaultValue filled in.
// Returns the entered text or an error
func PromptInput(title, description, defaultValue string, validate func(string) error) (string, error) {
	if !canPrompt() {
		return "", fmt.Errorf("interactive input not available (not a TTY)")
	}

	value := defaultValue
	input := huh.NewInput().
		Title(title).
		Description(description).
		Placeholder(defaultValue).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	form := huh.NewForm(huh.NewGroup(input)).WithAccessible(IsAccessibleMode())
	if err := form.Run(); err != nil {
		return "", err
	}

	consoleLog.Printf("Prompt answered: title=%q", title)
	return value, nil
}

// canPrompt reports whether a form can run: huh reads keys from stdin and
// draws on stdout, so both must be terminals.
func canPrompt() bool {
	return tty.IsTerminal(os.Stdin) && tty.IsStdoutTerminal()
}
