package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/textsign/textsign"
)

const stdinName = "-"

var (
	errAllArtifactsExist = errors.New("key files already exist, use --force to overwrite")
	errSomeArtifactExist = errors.New("one of the key files already exists, use --force to overwrite")
)

func newTextCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Sign, verify, encrypt and decrypt text",
	}
	cmd.AddCommand(
		newSignCommand(a),
		newVerifyCommand(a),
		newGenerateCommand(a),
		newEncryptCommand(a),
		newDecryptCommand(a),
	)
	return cmd
}

func newSignCommand(a *app) *cobra.Command {
	var input, key, format string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print the signature of the input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(cmd, format)
			if err != nil {
				return err
			}

			r, err := openInput(input, a.streams.Stdin)
			if err != nil {
				return err
			}
			defer r.Close()

			sig, err := a.engine.Sign(r, key, f)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.streams.Stdout, sig)
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinName, "input file, - for stdin")
	cmd.Flags().StringVarP(&key, "key", "k", "", "signing key file (ed25519: the .sk file)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "signature format (blake3, ed25519)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func newVerifyCommand(a *app) *cobra.Command {
	var input, key, format, signature string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Print true if the signature matches the input, false otherwise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(cmd, format)
			if err != nil {
				return err
			}

			r, err := openInput(input, a.streams.Stdin)
			if err != nil {
				return err
			}
			defer r.Close()

			ok, err := a.engine.Verify(r, key, f, signature)
			if err != nil {
				return err
			}
			if !ok {
				a.log.Warningf("signature does not match %s", inputName(input))
			}
			_, err = fmt.Fprintln(a.streams.Stdout, ok)
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinName, "input file, - for stdin")
	cmd.Flags().StringVarP(&key, "key", "k", "", "verification key file (ed25519: the .pk file)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "signature format (blake3, ed25519)")
	cmd.Flags().StringVarP(&signature, "signature", "s", "", "base64 signature to check")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}

func newGenerateCommand(a *app) *cobra.Command {
	var format, out string
	var force bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create key files for a format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(cmd, format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("out") {
				out = a.settings.Text.KeyDir
			}

			bufs, err := a.engine.Generate(f)
			if err != nil {
				return err
			}

			paths, err := writeArtifacts(out, f, bufs, force)
			if err != nil {
				return err
			}
			for _, p := range paths {
				a.log.Noticef("wrote %s", p)
				if _, err := fmt.Fprintln(a.streams.Stdout, p); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "key format (blake3, ed25519, chacha_poly)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (default from config, else .)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing key files")
	return cmd
}

func newEncryptCommand(a *app) *cobra.Command {
	var input, key, nonce string

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt the input with ChaCha20-Poly1305 and print base64",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openInput(input, a.streams.Stdin)
			if err != nil {
				return err
			}
			defer r.Close()

			ciphertext, err := a.engine.Encrypt(r, key, nonce)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.streams.Stdout, ciphertext)
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinName, "plaintext file, - for stdin")
	cmd.Flags().StringVarP(&key, "key", "k", "", "key file")
	cmd.Flags().StringVarP(&nonce, "nonce", "n", "", "nonce file")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("nonce")
	return cmd
}

func newDecryptCommand(a *app) *cobra.Command {
	var input, key, nonce string

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt base64 ciphertext and print the plaintext",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openInput(input, a.streams.Stdin)
			if err != nil {
				return err
			}
			defer r.Close()

			plaintext, err := a.engine.Decrypt(r, key, nonce)
			if err != nil {
				return err
			}
			_, err = a.streams.Stdout.Write(plaintext)
			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", stdinName, "ciphertext file, - for stdin")
	cmd.Flags().StringVarP(&key, "key", "k", "", "key file")
	cmd.Flags().StringVarP(&nonce, "nonce", "n", "", "nonce file")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("nonce")
	return cmd
}

// openInput opens path for reading, or returns stdin for "-".
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == stdinName {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &textsign.IOError{Op: "open", Path: path, Err: err}
	}
	return f, nil
}

func inputName(path string) string {
	if path == stdinName {
		return "stdin"
	}
	return path
}

// writeArtifacts writes bufs into dir under f.ArtifactNames(). Unless force
// is set, nothing is written if any of the files exists. If a write fails the
// files written before it are removed.
func writeArtifacts(dir string, f textsign.Format, bufs [][]byte, force bool) ([]string, error) {
	names := f.ArtifactNames()
	if len(names) != len(bufs) {
		return nil, fmt.Errorf("%s: got %d key buffers for %d files", f, len(bufs), len(names))
	}

	paths := make([]string, len(names))
	existing := 0
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		if _, err := os.Stat(paths[i]); err == nil {
			existing++
		}
	}
	if !force {
		switch {
		case existing == len(paths):
			return nil, errAllArtifactsExist
		case existing > 0:
			return nil, errSomeArtifactExist
		}
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, &textsign.IOError{Op: "create", Path: dir, Err: err}
	}
	for i, p := range paths {
		if err := writeKeyFile(p, bufs[i], artifactMode(f, i)); err != nil {
			// Leave no partial key set behind.
			for _, written := range paths[:i] {
				_ = os.Remove(written)
			}
			return nil, err
		}
	}
	return paths, nil
}

// artifactMode keeps secret material owner-only. Only the Ed25519 public key
// is world readable.
func artifactMode(f textsign.Format, i int) os.FileMode {
	if f == textsign.FormatEd25519 && i == 1 {
		return 0644
	}
	return 0600
}

func writeKeyFile(path string, b []byte, mode os.FileMode) error {
	fd, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return &textsign.IOError{Op: "create", Path: path, Err: err}
	}
	defer fd.Close()

	if err := fd.Chmod(mode); err != nil {
		return &textsign.IOError{Op: "chmod", Path: path, Err: err}
	}
	if _, err := fd.Write(b); err != nil {
		return &textsign.IOError{Op: "write", Path: path, Err: err}
	}
	return fd.Close()
}
