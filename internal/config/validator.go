package config

import (
	"fmt"
	"net/url"
	"os"
)

// Validate performs comprehensive validation of the configuration. Any
// failure here is a configuration error per the driver's error taxonomy:
// fatal, reported, non-zero exit.
func (c *Config) Validate() error {
	if err := c.validateNeo4j(); err != nil {
		return fmt.Errorf("neo4j config error: %w", err)
	}

	if err := c.validateRulePaths(); err != nil {
		return fmt.Errorf("rule path config error: %w", err)
	}

	return nil
}

func (c *Config) validateNeo4j() error {
	if c.Neo4jConfig.URI == "" {
		return fmt.Errorf("uri is required")
	}

	if _, err := url.Parse(c.Neo4jConfig.URI); err != nil {
		return fmt.Errorf("invalid uri format: %w", err)
	}

	if c.Neo4jConfig.User == "" {
		return fmt.Errorf("user is required")
	}

	return nil
}

func (c *Config) validateRulePaths() error {
	if c.AttributesRulesDirPath == "" {
		return fmt.Errorf("attributes_rules_dir_path is required")
	}
	if c.PermissionsRulesDirPath == "" {
		return fmt.Errorf("permissions_rules_dir_path is required")
	}

	if info, err := os.Stat(c.AttributesRulesDirPath); err != nil || !info.IsDir() {
		return fmt.Errorf("attributes_rules_dir_path %q is not a directory", c.AttributesRulesDirPath)
	}
	if info, err := os.Stat(c.PermissionsRulesDirPath); err != nil || !info.IsDir() {
		return fmt.Errorf("permissions_rules_dir_path %q is not a directory", c.PermissionsRulesDirPath)
	}

	return nil
}
