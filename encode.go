package main

import (
	"io"

	"github.com/artenax/emissary/lib/base32"
	"github.com/artenax/emissary/lib/base64"
	"github.com/artenax/emissary/lib/config"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var (
	encodeIn        string
	encodeOut       string
	encodeB32       bool
	encodeNoPadding bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode raw bytes as I2P base64 text",
	Long: `encode reads raw bytes from a file or standard input and writes
the I2P base64 form to a file or standard output. Encoding never fails on
content; only the source or the sink can fail.`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeIn, "in", "i", "",
		"read raw bytes from `FILE` instead of standard input")
	encodeCmd.Flags().StringVarP(&encodeOut, "out", "o", "",
		"write encoded text to `FILE` instead of standard output")
	encodeCmd.Flags().BoolVar(&encodeB32, "b32", false,
		"use the I2P base32 alphabet instead of base64")
	encodeCmd.Flags().BoolVar(&encodeNoPadding, "no-padding", false,
		"omit trailing padding characters")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg := config.CurrentConfig()
	if err := config.Validate(cfg); err != nil {
		return err
	}

	src, err := openSource(encodeIn, "", false)
	if err != nil {
		return err
	}
	defer src.Close()

	sink, err := openSink(encodeOut)
	if err != nil {
		return err
	}

	padded := paddingEnabled(cmd, encodeNoPadding, cfg)
	log.WithFields(logger.Fields{
		"b32":    encodeB32,
		"padded": padded,
	}).Debug("encoding")

	var w io.WriteCloser
	switch {
	case encodeB32 && padded:
		w = base32.NewEncoder(sink)
	case encodeB32:
		w = base32.NewUnpaddedEncoder(sink)
	default:
		enc := base64.I2PEncoding
		if !padded {
			enc = enc.WithPadding(base64.NoPadding)
		}
		w = base64.NewEncoder(enc, sink)
	}

	if _, err := io.CopyBuffer(w, src, copyBuf(cfg)); err != nil {
		return oops.Errorf("encoding failed: %w", err)
	}
	// Close order matters: the codec flushes its final group into the sink.
	if err := w.Close(); err != nil {
		return oops.Errorf("encoding failed: %w", err)
	}
	if err := sink.Close(); err != nil {
		return oops.Errorf("closing output: %w", err)
	}
	return nil
}
