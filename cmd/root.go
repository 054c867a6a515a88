// Package cmd contains all the commands included in the b64
// binary.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hisamafahri/lagon/base64"
	"github.com/hisamafahri/lagon/internal/logger"
)

const (
	alphabetFlag  = "alphabet"
	noPaddingFlag = "no-padding"
	strictFlag    = "strict"
	logFormatFlag = "log-format"
	logLevelFlag  = "log-level"
)

// env is shared by every command of one root.
type env struct {
	v      *viper.Viper
	logger logger.Logger
}

// NewRootCommand returns the b64 command with all children
// attached. Flags are read from the command line, environment
// variables prefixed with B64, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	e := &env{
		v:      viper.New(),
		logger: logger.NewNoopLogger(),
	}
	e.v.SetConfigName("config")
	e.v.SetConfigType("yaml")

	e.v.SetEnvPrefix("B64")
	e.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	e.v.AutomaticEnv()

	for _, path := range []string{"/etc/b64", "$HOME/.b64", "."} {
		e.v.AddConfigPath(path)
	}

	cmd := &cobra.Command{
		Use:   "b64",
		Short: "Encode and decode base64 the way browsers do",
		Long: `Encode and decode base64 the way browsers do.

Decoding is forgiving: ASCII whitespace is ignored and padding is optional,
matching atob. Encoding always produces the canonical form, matching btoa.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.String(alphabetFlag, "std", "the base64 alphabet: std or url")
	flags.Bool(noPaddingFlag, false, "omit padding when encoding and reject it when decoding")
	flags.Bool(strictFlag, false, "reject non-zero trailing bits when decoding")
	flags.String(logFormatFlag, "text", "the log format: text or json")
	flags.String(logLevelFlag, "info", "the log level: none, debug, info, warn or error")

	cmd.PersistentPreRunE = e.setupFunc(flags)

	cmd.AddCommand(newEncodeCommand(e))
	cmd.AddCommand(newDecodeCommand(e))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// setupFunc binds the persistent flags to viper, reads the
// optional config file and builds the logger.
func (e *env) setupFunc(flags *pflag.FlagSet) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if err := e.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("failed to read config: %w", err)
			}
		}

		for _, name := range []string{alphabetFlag, noPaddingFlag, strictFlag, logFormatFlag, logLevelFlag} {
			mustBindPFlag(e.v, name, flags.Lookup(name))
		}
		cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
			mustBindPFlag(e.v, f.Name, f)
		})

		log, err := logger.NewLogger(e.v.GetString(logFormatFlag), e.v.GetString(logLevelFlag))
		if err != nil {
			return err
		}
		e.logger = log
		return nil
	}
}

// encoding returns the base64 encoding selected by the
// configuration.
func (e *env) encoding() (*base64.Encoding, error) {
	var enc *base64.Encoding
	switch alphabet := e.v.GetString(alphabetFlag); alphabet {
	case "std", "":
		enc = base64.StdEncoding
	case "url":
		enc = base64.URLEncoding
	default:
		return nil, fmt.Errorf("unknown alphabet '%s'", alphabet)
	}
	if e.v.GetBool(noPaddingFlag) {
		enc = enc.WithPadding(base64.NoPadding)
	}
	if e.v.GetBool(strictFlag) {
		enc = enc.Strict()
	}
	return enc, nil
}

// mustBindPFlag attempts to bind a specific key to a pflag (as
// used by cobra) and panics if the binding fails with a non-nil
// error.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}
