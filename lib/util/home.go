package util

import (
	"os"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// UserHome returns the directory the config tree is rooted in. It prefers
// os.UserHomeDir, then the HOME and USERPROFILE variables, and finally the
// working directory, so a container with no home set still gets a usable
// config path.
func UserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return fallbackHome(err)
	}
	return home
}

func fallbackHome(cause error) string {
	for _, name := range []string{"HOME", "USERPROFILE"} {
		if dir := os.Getenv(name); dir != "" {
			log.WithError(cause).WithField("source", name).Warn("os.UserHomeDir failed, using environment fallback")
			return dir
		}
	}
	// A config file beside the binary beats crashing during package
	// initialization, before the process can report anything.
	if wd, err := os.Getwd(); err == nil {
		log.WithError(cause).Warn("No home directory available, using working directory")
		return wd
	}
	panic("emissary: unable to determine home directory; set $HOME environment variable.")
}
