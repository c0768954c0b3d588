package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the complete CADRA configuration read from config.json.
type Config struct {
	Neo4jConfig              Neo4jConfig  `json:"Neo4jConfig"`
	AttributesRulesDirPath   string       `json:"attributes_rules_dir_path"`
	PermissionsRulesDirPath  string       `json:"permissions_rules_dir_path"`
	EventMonitoring          map[string]bool `json:"event_monitoring"`
}

// Neo4jConfig is the graph connection block.
type Neo4jConfig struct {
	URI      string `json:"uri"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// Load reads and parses config.json at path. Environment variable
// placeholders of the form ${VAR} in the password field are expanded so
// credentials need not live in the file on disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse config file: %w", err)
	}

	cfg.Neo4jConfig.Password = os.ExpandEnv(cfg.Neo4jConfig.Password)

	return cfg, nil
}

// EventMonitoringInts converts the string-keyed JSON monitoring map into
// the int-keyed form the permission assessor consumes. A key that does not
// parse as an integer event id is skipped and returned in the second
// result, for the caller to log.
func (c *Config) EventMonitoringInts() (map[int]bool, []string) {
	out := make(map[int]bool, len(c.EventMonitoring))
	var invalid []string
	for k, v := range c.EventMonitoring {
		id, err := parseEventID(k)
		if err != nil {
			invalid = append(invalid, k)
			continue
		}
		out[id] = v
	}
	return out, invalid
}

func parseEventID(s string) (int, error) {
	var id int
	_, err := fmt.Sscanf(s, "%d", &id)
	return id, err
}
