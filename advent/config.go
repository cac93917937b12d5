package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/vaughan0/go-ini"
)

// config holds the settings from the [default] section of the config file.
// Zero values mean "use the flag default".
type config struct {
	inputDir string
	workers  int
	human    bool
	addr     string
	format   string
	history  string
}

// loadConfig reads the config file at path. A missing file is the same as
// an empty one.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	section := file.Section("default")
	cfg.inputDir = section["inputdir"]
	cfg.addr = section["addr"]
	cfg.format = section["format"]
	cfg.history = section["history"]
	if s, ok := section["workers"]; ok {
		cfg.workers, err = strconv.Atoi(s)
		if err != nil || cfg.workers < 1 {
			return cfg, fmt.Errorf("config %s: bad workers value %q", path, s)
		}
	}
	if s, ok := section["human"]; ok {
		cfg.human, err = strconv.ParseBool(s)
		if err != nil {
			return cfg, fmt.Errorf("config %s: bad human value %q", path, s)
		}
	}
	return cfg, nil
}
