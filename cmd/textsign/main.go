package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/op/go-logging.v1"

	"github.com/textsign/textsign"
	"github.com/textsign/textsign/internal/config"
	"github.com/textsign/textsign/internal/log"
)

// Config holds the streams the command reads from and writes to.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// app is the state shared by every subcommand once the root command has
// resolved configuration.
type app struct {
	streams Config

	configFile string
	envFile    string
	logLevel   string

	settings *config.Config
	backend  *log.Backend
	log      *logging.Logger
	engine   *textsign.Engine
}

func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.Resolve(a.configFile, a.envFile)
	if err != nil {
		return &usageError{err: err}
	}
	if cmd.Flags().Changed("log-level") {
		if !log.ValidLevel(a.logLevel) {
			return &usageError{err: fmt.Errorf("invalid argument %q for --log-level", a.logLevel)}
		}
		settings.Logging.Level = a.logLevel
	}

	backend, err := log.NewWithWriter(a.streams.Stderr, settings.Logging.File, settings.Logging.Level, settings.Logging.Disable)
	if err != nil {
		return err
	}

	a.settings = settings
	a.backend = backend
	a.log = backend.GetLogger("textsign")
	a.engine = textsign.New(textsign.WithLogger(backend.GetLogger("engine")))
	return nil
}

// teardown closes the log backend opened by setup. It runs whether or not
// the command succeeded.
func (a *app) teardown() error {
	if a.backend == nil {
		return nil
	}
	err := a.backend.Close()
	a.backend = nil
	return err
}

// format returns the --format flag when set, otherwise the configured default.
func (a *app) format(cmd *cobra.Command, flag string) (textsign.Format, error) {
	if cmd.Flags().Changed("format") {
		return textsign.ParseFormat(flag)
	}
	return a.settings.Format(), nil
}

func newApp(streams Config) *app {
	return &app{streams: streams}
}

// rootCommand creates the root cobra command
func (a *app) rootCommand() *cobra.Command {
	streams := a.streams

	cmd := &cobra.Command{
		Use:   "textsign",
		Short: "Sign, verify and encrypt text",
		Long: `textsign signs and verifies text with keyed BLAKE3 or Ed25519, and
encrypts it with ChaCha20-Poly1305. Signatures and ciphertexts are printed
as URL-safe base64 without padding. Key files hold raw key bytes.`,
		Example: `  # Create an Ed25519 key pair in ./keys
  textsign text generate --format ed25519 -o keys

  # Sign a file and verify the signature
  sig=$(textsign text sign --format ed25519 -k keys/ed25519.sk -i notes.txt)
  textsign text verify --format ed25519 -k keys/ed25519.pk -i notes.txt -s "$sig"

  # Generate a 24 character password without symbols
  textsign genpass -l 24 --no-symbol`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "configuration file")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "environment file, ignored when missing")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "NOTICE", "logging level (DEBUG, INFO, NOTICE, WARNING, ERROR)")

	cmd.SetIn(streams.Stdin)
	cmd.SetOut(streams.Stdout)
	cmd.SetErr(streams.Stderr)

	cmd.AddCommand(newTextCommand(a), newGenpassCommand(a))
	return cmd
}

// run executes the command line args against cfg. args[0] is the program
// name.
func run(args []string, cfg Config) error {
	return execute(newApp(cfg), args[1:])
}

func execute(a *app, args []string) error {
	defer a.teardown()

	cmd := a.rootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}
