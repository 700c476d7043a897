package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/openclaw/installer/internal/config"
)

// styled is swapped out in tests and when stdout is not a terminal.
var styled = isInteractiveTTY()

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Interactive reports whether stdout is an interactive terminal. The
// install handler refuses to prompt when it is not.
func Interactive() bool { return styled }

// Banner prints the installer heading.
func Banner() {
	fmt.Println()
	fmt.Println("  " + render(titleStyle, "OpenClaw Installer"))
	fmt.Println("  " + render(dimStyle, strings.Repeat("─", 40)))
	fmt.Println()
}

// Section prints a stage heading.
func Section(name string) {
	fmt.Println(render(sectionStyle, "  "+name))
}

// Check prints one preflight check row.
func Check(name string, ok bool, extra string) {
	mark := render(okStyle, checkMark)
	if !ok {
		mark = render(failStyle, crossMark)
	}
	if extra != "" {
		fmt.Printf("  %s  %-24s %s\n", mark, name, render(dimStyle, extra))
		return
	}
	fmt.Printf("  %s  %s\n", mark, name)
}

// Summary prints the resolved configuration before the confirmation
// gate.
func Summary(d *config.Deployment) {
	Section("Configuration")
	fmt.Printf("    Install directory:  %s\n", d.InstallDir)
	fmt.Printf("    Port:               %d\n", d.Port)
	fmt.Printf("    Image:              %s\n", d.Image)
	fmt.Println()
}

// Success prints the final access details. This is the only place the
// token is surfaced outside the manifest file.
func Success(d *config.Deployment, tokenHex string) {
	body := strings.Join([]string{
		render(okStyle, "OpenClaw is up."),
		"",
		"Console:  " + d.AccessURL(),
		"Token:    " + render(tokenStyle, tokenHex),
		"",
		render(dimStyle, "The token is also stored in "+d.ManifestPath()),
	}, "\n")

	fmt.Println()
	if styled {
		fmt.Println(successBoxStyle.Render(body))
	} else {
		fmt.Println(body)
	}
	fmt.Println()
}

// Warn prints a soft post-launch warning. The process still exits zero
// after it.
func Warn(msg string) {
	fmt.Println()
	fmt.Printf("  %s %s\n", render(warningStyle, warnMark), msg)
	fmt.Println()
}

// Fail prints a hard failure line before the process exits non-zero.
func Fail(msg string) {
	fmt.Printf("  %s %s\n", render(failStyle, crossMark), msg)
}

// Info prints a plain informational line.
func Info(msg string) {
	fmt.Println("  " + msg)
}

func render(style interface{ Render(...string) string }, s string) string {
	if !styled {
		return s
	}
	return style.Render(s)
}
