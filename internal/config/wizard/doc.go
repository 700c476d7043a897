// Package wizard collects install parameters interactively.
//
// It uses charmbracelet/huh form groups to prompt for the install
// directory and host port, then shows the resolved configuration and
// requires an explicit go/no-go confirmation. An empty answer keeps the
// suggested default. Non-interactive runs bypass this package entirely.
package wizard
