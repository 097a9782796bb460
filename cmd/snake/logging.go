package main

import (
	"flag"
	"os"

	"github.com/pkg/errors"
)

// logDir receives glog files in debug mode unless -log_dir is given
const logDir = "logs"

// setupLogging routes glog away from the terminal the game draws on
// Debug raises verbosity to per-tick state dumps and keeps the files next to the binary
func setupLogging(debug bool) error {
	settings := map[string]string{
		"logtostderr":     "false",
		"alsologtostderr": "false",
		"stderrthreshold": "FATAL",
		"v":               "0",
	}
	if debug {
		settings["v"] = "2"
		if f := flag.Lookup("log_dir"); f != nil && f.Value.String() == "" {
			settings["log_dir"] = logDir
		}
	}

	for name, value := range settings {
		if err := flag.Set(name, value); err != nil {
			return errors.Wrapf(err, "set -%s", name)
		}
	}

	if debug {
		if err := os.MkdirAll(flag.Lookup("log_dir").Value.String(), 0o755); err != nil {
			return errors.Wrap(err, "create log directory")
		}
	}
	return nil
}
