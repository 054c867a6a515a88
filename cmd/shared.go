package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hisamafahri/lagon/base64"
)

const (
	formatRaw          = "raw"
	formatHex          = "hex"
	formatBinaryString = "binary-string"
)

// readInput returns the first argument, or all of stdin when
// there is none.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return b, nil
}

// errorFields describes a codec error for the log.
func errorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	var ice *base64.InvalidCharacterError
	var bre *base64.ByteRangeError
	switch {
	case errors.As(err, &ice):
		fields = append(fields,
			zap.String("kind", ice.Name()),
			zap.Int("offset", ice.Offset),
			zap.Int("length", ice.Len))
	case errors.As(err, &bre):
		fields = append(fields,
			zap.String("kind", bre.Name()),
			zap.Int("offset", bre.Offset),
			zap.Int32("rune", bre.Rune))
	}
	return fields
}

// logged wraps a RunE so that its error is reported once, through
// the logger, instead of again by cobra. The logger is flushed
// before returning.
func (e *env) logged(msg string, run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer func() { _ = e.logger.Sync() }()

		err := run(cmd, args)
		if err != nil {
			e.logger.Error(msg, errorFields(err)...)
			cmd.SilenceErrors = true
		}
		return err
	}
}
