package main

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/artenax/emissary/lib/config"
	"github.com/artenax/emissary/lib/util"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// nopWriteCloser keeps standard output usable through the io.WriteCloser
// plumbing without ever closing the real descriptor.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// onceCloser lets a sink be closed from both the command's happy path and
// the interrupt handler's CloseAll without a double-close error.
type onceCloser struct {
	io.WriteCloser
	once sync.Once
	err  error
}

func (oc *onceCloser) Close() error {
	oc.once.Do(func() { oc.err = oc.WriteCloser.Close() })
	return oc.err
}

// openSource resolves a command's input: the inline string when -s was
// given, the named file when -i was given, standard input otherwise.
// Naming both is a usage error caught here, before any decoding starts.
func openSource(path, inline string, inlineSet bool) (io.ReadCloser, error) {
	if path != "" && inlineSet {
		return nil, oops.Errorf("cannot combine --in with --string")
	}
	if inlineSet {
		return io.NopCloser(strings.NewReader(inline)), nil
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, oops.Errorf("opening input: %w", err)
		}
		return f, nil
	}
	return io.NopCloser(os.Stdin), nil
}

// openSink resolves a command's output: the named file when -o was given,
// standard output otherwise. File sinks are registered so an interrupt
// still flushes and closes them.
func openSink(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, oops.Errorf("creating output: %w", err)
	}
	sink := &onceCloser{WriteCloser: f}
	util.RegisterCloser(sink)
	return sink, nil
}

// paddingEnabled resolves the padding mode for one invocation: an explicit
// --no-padding wins, otherwise the codec.padding config key decides.
func paddingEnabled(cmd *cobra.Command, noPadding bool, cfg config.ConfigDefaults) bool {
	if cmd.Flags().Changed("no-padding") {
		return !noPadding
	}
	return cfg.Codec.Padding
}

// whitespaceIgnored resolves the whitespace mode the same way, from
// --ignore-whitespace and the codec.ignore_whitespace key.
func whitespaceIgnored(cmd *cobra.Command, ignore bool, cfg config.ConfigDefaults) bool {
	if cmd.Flags().Changed("ignore-whitespace") {
		return ignore
	}
	return cfg.Codec.IgnoreWhitespace
}

// copyBuf sizes the pump buffer from the validated io.buffer_size key.
func copyBuf(cfg config.ConfigDefaults) []byte {
	return make([]byte, cfg.IO.BufferSize)
}
