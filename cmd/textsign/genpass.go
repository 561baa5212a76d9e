package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textsign/textsign/internal/passgen"
)

func newGenpassCommand(a *app) *cobra.Command {
	var length int
	var noUpper, noLower, noNumber, noSymbol bool

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passgen.Generate(length, passgen.Options{
				Upper:  !noUpper,
				Lower:  !noLower,
				Number: !noNumber,
				Symbol: !noSymbol,
			})
			if err != nil {
				return err
			}
			a.log.Noticef("password strength %d/4", passgen.Strength(pw))
			_, err = fmt.Fprintln(a.streams.Stdout, pw)
			return err
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", passgen.DefaultLength, "password length")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&noNumber, "no-number", false, "exclude digits")
	cmd.Flags().BoolVar(&noSymbol, "no-symbol", false, "exclude symbols")
	return cmd
}
