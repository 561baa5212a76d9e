//go:build !testcoverage

package main

import (
	"context"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/charmbracelet/fang"
)

func main() {
	a := newApp(DefaultConfig())
	rootCmd := a.rootCommand()

	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versioninfo.Short()),
		fang.WithErrorHandler(errorHandlerWithUsage(rootCmd)),
	)
	_ = a.teardown()
	if err != nil {
		os.Exit(1)
	}
}
