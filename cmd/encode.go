package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hisamafahri/lagon/hex"
)

const inputFormatFlag = "input-format"

func newEncodeCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text or stdin as base64",
		Long: `Encode the argument, or stdin if there is none, as base64.

The input is read as raw bytes, as hex, or as a binary string whose
characters must each be in U+0000 ... U+00FF (like btoa).

Text starting with '-' must be given on stdin or after "--".`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.logged("encode failed", e.runEncode),
	}

	flags := cmd.Flags()
	flags.String(inputFormatFlag, formatRaw, "the input format: raw, hex or binary-string")

	return cmd
}

func (e *env) runEncode(cmd *cobra.Command, args []string) error {
	enc, err := e.encoding()
	if err != nil {
		return err
	}
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var out string
	switch format := e.v.GetString(inputFormatFlag); format {
	case formatRaw:
		out = enc.EncodeToString(in)
	case formatHex:
		src, err := hex.DecodeString(strings.TrimSpace(string(in)))
		if err != nil {
			return fmt.Errorf("invalid hex input: %w", err)
		}
		out = enc.EncodeToString(src)
	case formatBinaryString:
		out, err = enc.EncodeBinaryString(string(in))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown input format '%s'", format)
	}

	e.logger.Debug("encoded", zap.Int("input_bytes", len(in)), zap.Int("output_bytes", len(out)))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
