package config

import (
	"encoding/json"
	"os"

	"github.com/hacksnooze/hacksnooze-go/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; values are
// copied into the runtime Config afterwards.
type JsonConfig struct {
	APIBaseURL    string `json:"api_base_url"`
	SessionDBPath string `json:"session_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flags. If no config flag is given, nothing is loaded. Read and
// unmarshal errors panic; only fields present in the file override.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}
