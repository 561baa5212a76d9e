package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// usageError marks a mistake on the command line or in the configuration,
// as opposed to a failure while running a command.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// cobraUsagePrefixes are the leading words of the untyped errors cobra and
// pflag return for bad arguments, unknown commands and missing flags.
var cobraUsagePrefixes = []string{
	"unknown command ",
	"required flag(s) ",
	"accepts ",
	"requires at least ",
	"requires at most ",
}

// isUsageError reports whether err comes from parsing the command line or
// loading configuration rather than from running the command.
func isUsageError(err error) bool {
	var ue *usageError
	if errors.As(err, &ue) {
		return true
	}
	msg := err.Error()
	for _, prefix := range cobraUsagePrefixes {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

// errorHandlerWithUsage prints the error and, for usage errors, the help of
// the root command. The help goes through a colorprofile writer so styling is
// reduced to what w supports. Other errors get a "Try --help" hint.
func errorHandlerWithUsage(cmd *cobra.Command) fang.ErrorHandler {
	return func(w io.Writer, styles fang.Styles, err error) {
		_, _ = fmt.Fprintln(w, styles.ErrorHeader.String())
		_, _ = fmt.Fprintln(w, styles.ErrorText.Render(err.Error()+"."))
		_, _ = fmt.Fprintln(w)

		if !isUsageError(err) {
			_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(
				lipgloss.Left,
				styles.ErrorText.UnsetWidth().Render("Try"),
				styles.Program.Flag.Render("--help"),
				styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().PaddingLeft(1).Render("for usage."),
			))
			_, _ = fmt.Fprintln(w)
			return
		}

		out := cmd.OutOrStdout()
		cmd.SetOut(colorprofile.NewWriter(w, os.Environ()))
		cmd.HelpFunc()(cmd, nil)
		cmd.SetOut(out)
	}
}
