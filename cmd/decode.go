package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hisamafahri/lagon/hex"
)

const formatFlag = "format"

func newDecodeCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [data]",
		Short: "Decode base64 from the argument or stdin",
		Long: `Decode base64 from the argument, or stdin if there is none.

Whitespace is ignored and padding is optional (like atob). The output is
written as raw bytes, as hex, or as a binary string.

Data starting with '-', as base64url may, must be given on stdin or
after "--".`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.logged("decode failed", e.runDecode),
	}

	flags := cmd.Flags()
	flags.String(formatFlag, formatRaw, "the output format: raw, hex or binary-string")

	return cmd
}

func (e *env) runDecode(cmd *cobra.Command, args []string) error {
	enc, err := e.encoding()
	if err != nil {
		return err
	}
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format := e.v.GetString(formatFlag); format {
	case formatBinaryString:
		out, err := enc.DecodeBinaryString(string(in))
		if err != nil {
			return err
		}
		e.logger.Debug("decoded", zap.Int("input_bytes", len(in)), zap.Int("output_chars", len(out)))
		_, err = fmt.Fprintln(w, out)
		return err
	case formatRaw, formatHex:
		dst := make([]byte, enc.DecodedLen(len(in)))
		n, err := enc.Decode(dst, in)
		if err != nil {
			return err
		}
		dst = dst[:n]
		e.logger.Debug("decoded", zap.Int("input_bytes", len(in)), zap.Int("output_bytes", n))
		if format == formatHex {
			_, err = fmt.Fprintln(w, hex.EncodeToString(dst))
			return err
		}
		_, err = w.Write(dst)
		return err
	default:
		return fmt.Errorf("unknown format '%s'", format)
	}
}
