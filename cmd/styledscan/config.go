package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/styledscan"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".styledscan.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Unchanged flags only fill keys the file and env left unset
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// STYLEDSCAN_OUTPUT_FORMAT -> output-format
	// STYLEDSCAN_RESPECT_GITIGNORE -> respect-gitignore
	if err := k.Load(env.Provider("STYLEDSCAN_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STYLEDSCAN_")),
			"_", "-",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildScanConfig constructs the library's Config from koanf state.
// A positional root argument wins over the root key.
func buildScanConfig(args []string, logger *log.Logger) styledscan.Config {
	root := stringOr("root", styledscan.DefaultRoot)
	if len(args) > 0 && args[0] != "" {
		root = args[0]
	}

	return styledscan.Config{
		Root:             root,
		Exclude:          stringsOr("exclude"),
		RespectGitignore: boolOr("respect-gitignore", false),
		Jobs:             intOr("jobs", 0),
		ListMatches:      boolOr("list-matches", false),
		Logger:           logger,
	}
}

// stringOr returns the string at key, or defaultVal when unset or empty
func stringOr(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// stringsOr returns the list at key. Env vars arrive as one string, so a
// plain string value is split on commas: STYLEDSCAN_EXCLUDE=gen,**/*.test.ts
func stringsOr(key string) []string {
	if v := k.Strings(key); len(v) > 0 {
		return v
	}

	raw, ok := k.Get(key).(string)
	if !ok {
		return nil
	}

	var list []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// boolOr returns the bool at key, or defaultVal when unset
func boolOr(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// intOr returns the int at key, or defaultVal when unset
func intOr(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
