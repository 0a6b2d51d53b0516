package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// stdout is swapped in tests
var stdout io.Writer = os.Stdout

// hostilePatterns are rejected in any argument handed to exec
var hostilePatterns = []string{"|", "`", "$(", "&&", "||", ">", "<"}

func useColor() bool {
	_, off := os.LookupEnv("NO_COLOR")
	return !off
}

func printLine(color, symbol, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if symbol != "" {
		msg = symbol + " " + msg
	}
	if useColor() {
		msg = color + msg + colorReset
	}
	fmt.Fprintln(stdout, msg)
}

func PrintInfo(format string, a ...any)    { printLine(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...any) { printLine(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...any) { printLine(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...any)   { printLine(colorRed, "✗", format, a...) }

// PrintHeader starts a devtool section
func PrintHeader(title string) {
	fmt.Fprintln(stdout)
	printLine(colorYellow, "", "=== %s: %s ===", appName, title)
}

// checkHostile rejects arguments that could split or redirect a command line.
// URLs with '&' and SQL with ';' pass.
func checkHostile(inputs ...string) error {
	for _, s := range inputs {
		if strings.ContainsAny(s, "\n\r") {
			return fmt.Errorf("hostile input detected: newlines or carriage returns")
		}
		if strings.Contains(s, "\x00") {
			return fmt.Errorf("hostile input detected: null byte")
		}
		for _, p := range hostilePatterns {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

func command(name string, args ...string) (*exec.Cmd, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return nil, err
	}
	// #nosec G204 - arguments are checked above
	return exec.Command(name, args...), nil
}

// getCommandOutput runs a tool and returns its trimmed stdout
func getCommandOutput(name string, args ...string) (string, error) {
	cmd, err := command(name, args...)
	if err != nil {
		return "", err
	}
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// runCommandVerbose runs a tool with its output streamed to the terminal
func runCommandVerbose(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
