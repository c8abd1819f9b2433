package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hobeone/pepfeed/config"
	"github.com/hobeone/pepfeed/log"
	"github.com/sirupsen/logrus"
)

// PrintErrorAndExit prints out the given string to STDERR and exits
var PrintErrorAndExit = func(errString string) {
	fmt.Fprintf(os.Stderr, "ERROR: %s.\n", errString)
	os.Exit(1)
}

// commonInit sets up logging and reads the config every command needs.
func commonInit() (*config.Config, *logrus.Logger) {
	logger := logrus.New()
	log.SetupLogger(logger, Verbose)

	cfg, err := loadConfig(ConfigFile, logger)
	if err != nil {
		PrintErrorAndExit(err.Error())
	}
	return cfg, logger
}

// loadConfig reads cfile, or the default config if it exists.  A missing
// default config just means running on defaults.
func loadConfig(cfile string, logger logrus.FieldLogger) (*config.Config, error) {
	cfg := config.NewConfig()
	if len(cfile) == 0 {
		logger.Debugf("No --config_file given.  Trying default: %s", config.DefaultConfig)
		err := cfg.ReadConfig(config.DefaultConfig)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debugf("No config at %s, using defaults", config.DefaultConfig)
			return cfg, cfg.ReadConfig("")
		}
		return cfg, err
	}

	logger.Infof("Got config file: %s", cfile)
	return cfg, cfg.ReadConfig(cfile)
}
