package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/openclaw/installer/internal/config"
)

// runParametersGroup prompts for the install directory and host port.
func runParametersGroup(ctx context.Context, defaults Defaults, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Install Directory").
				Description("Where the compose manifest and data directories are created").
				Placeholder(defaults.InstallDir).
				Value(&result.InstallDir),
			huh.NewInput().
				Title("Port").
				Description(fmt.Sprintf("Host port for the gateway console (default %d)", defaults.Port)).
				Placeholder(fmt.Sprintf("%d", defaults.Port)).
				Value(&result.Port).
				Validate(validatePort),
		).Title("Install Parameters"),
	).RunWithContext(ctx)
}

// runConfirmGroup shows the resolved configuration and asks for an
// explicit go/no-go.
func runConfirmGroup(ctx context.Context, d *config.Deployment, result *Result) error {
	summary := fmt.Sprintf(
		"Directory: %s\nPort:      %d\nImage:     %s",
		d.InstallDir, d.Port, d.Image,
	)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Start the install?").
				Description(summary).
				Affirmative("Install").
				Negative("Cancel").
				Value(&result.Confirmed),
		).Title("Confirmation"),
	).RunWithContext(ctx)
}

// Confirm asks a standalone yes/no question, used for the
// overwrite-existing-manifest warning.
func Confirm(ctx context.Context, title, description string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&ok),
		),
	).RunWithContext(ctx)
	return ok, err
}

// validatePort accepts an empty answer (keep default) or a syntactically
// valid port in range.
func validatePort(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := config.ParsePort(strings.TrimSpace(s))
	return err
}
