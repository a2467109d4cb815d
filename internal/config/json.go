package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/flagx"
	"github.com/dmitrijs2005/memoryvault/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify the debounce either as a string
// like "300ms" or as integer nanoseconds.
type JsonConfig struct {
	DataDir       string         `json:"data_dir"`
	Backend       string         `json:"backend"`
	MediaDirName  string         `json:"media_dir_name"`
	WatchDebounce timex.Duration `json:"watch_debounce"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent nothing is loaded.
// Only fields present in the JSON override the current values. Panics on
// read or unmarshal errors, so a broken config file is loud instead of
// silently ignored.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.Backend != "" {
		cfg.Backend = Backend(jc.Backend)
	}
	if jc.MediaDirName != "" {
		cfg.MediaDirName = jc.MediaDirName
	}
	if jc.WatchDebounce.Duration != 0 {
		cfg.WatchDebounce = time.Duration(jc.WatchDebounce.Duration)
	}
}
