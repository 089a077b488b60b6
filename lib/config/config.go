package config

import (
	"os"
	"path/filepath"

	"github.com/artenax/emissary/lib/util"
	"github.com/go-i2p/logger"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoI2PLogger()
)

const EMISSARY_BASE_DIR = ".emissary"

// InitConfig loads defaults and then the config file, creating the default
// file on first run.
func InitConfig() {
	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildEmissaryDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	handleConfigFile()
}

func setDefaults() {
	defaults := Defaults()

	// Codec defaults
	viper.SetDefault("codec.padding", defaults.Codec.Padding)
	viper.SetDefault("codec.ignore_whitespace", defaults.Codec.IgnoreWhitespace)

	// IO defaults
	viper.SetDefault("io.buffer_size", defaults.IO.BufferSize)
}

// CurrentConfig returns the effective configuration from current viper
// settings. It reads the same keys setDefaults writes, so a fresh viper
// state yields Defaults().
func CurrentConfig() ConfigDefaults {
	return ConfigDefaults{
		Codec: CodecDefaults{
			Padding:          viper.GetBool("codec.padding"),
			IgnoreWhitespace: viper.GetBool("codec.ignore_whitespace"),
		},
		IO: IODefaults{
			BufferSize: viper.GetInt("io.buffer_size"),
		},
	}
}

// createDefaultConfig writes the current defaults to dir/config.yaml so the
// user has a file to edit.
func createDefaultConfig(dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	target := filepath.Join(dir, "config.yaml")
	if err := viper.WriteConfigAs(target); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", target)
}

// handleConfigFile ensures a config file exists and loads it. An explicit
// --config path must already exist; the default path is created on first
// run. Existence is checked here because viper reports a missing explicit
// file as a bare path error rather than ConfigFileNotFoundError.
func handleConfigFile() {
	if CfgFile != "" {
		if !util.CheckFileExists(CfgFile) {
			log.Fatalf("Config file %s does not exist", CfgFile)
		}
	} else if !util.CheckFileExists(filepath.Join(BuildEmissaryDirPath(), "config.yaml")) {
		createDefaultConfig(BuildEmissaryDirPath())
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %s", err)
	}
	log.Debugf("Using config file: %s", viper.ConfigFileUsed())
}

// BuildEmissaryDirPath returns the default config directory, $HOME/.emissary.
func BuildEmissaryDirPath() string {
	return filepath.Join(util.UserHome(), EMISSARY_BASE_DIR)
}
