package main

import (
	"os"

	"github.com/artenax/emissary/lib/config"
	"github.com/artenax/emissary/lib/util"
	"github.com/artenax/emissary/lib/util/signals"
	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"
)

var log = logger.GetGoI2PLogger()

// Version is reported by emissary --version.
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "emissary",
	Short: "Encode and decode text in the I2P base64 alphabet",
	Long: `emissary converts between raw bytes and the base64 variant used
throughout I2P, which replaces '+' with '-' and '/' with '~' so encoded
text survives URLs and filenames unescaped. The base32 form used for
.b32.i2p hostnames is available on both commands with --b32.

Sources and sinks default to standard input and standard output, so the
commands compose as pipeline filters.`,
	Version:      Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.CfgFile, "config", "",
		"config file (default $HOME/.emissary/config.yaml)")
	cobra.OnInitialize(config.InitConfig)
}

func main() {
	go signals.Handle()
	signals.RegisterInterruptHandler(func() {
		util.CloseAll()
		os.Exit(1)
	})

	err := rootCmd.Execute()
	signals.StopHandle()
	util.CloseAll()
	if err != nil {
		log.WithError(err).Error("emissary failed")
		os.Exit(1)
	}
}
