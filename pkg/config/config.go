package config

import (
	"fmt"
	"strings"
)

// Config holds all savecrypt settings
type Config struct {
	Credential CredentialConfig `koanf:"credential" toml:"credential"`
	Engine     EngineConfig     `koanf:"engine" toml:"engine"`
	Conflict   ConflictConfig   `koanf:"conflict" toml:"conflict"`
	UI         UIConfig         `koanf:"ui" toml:"ui"`
}

// CredentialConfig locates the identity file
type CredentialConfig struct {
	File string `koanf:"file" toml:"file"`
}

// EngineConfig describes how the transform engine is launched
type EngineConfig struct {
	Command string `koanf:"command" toml:"command"`
	Script  string `koanf:"script" toml:"script"`
}

// ConflictConfig tunes the rename-candidate search
type ConflictConfig struct {
	MaxRandomAttempts int `koanf:"max_random_attempts" toml:"max_random_attempts"`
}

// UIConfig selects how notifications are presented
type UIConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// Validate checks that the merged configuration is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Credential.File) == "" {
		return fmt.Errorf("credential.file must not be empty")
	}
	if strings.TrimSpace(c.Engine.Command) == "" {
		return fmt.Errorf("engine.command must not be empty")
	}
	if strings.TrimSpace(c.Engine.Script) == "" {
		return fmt.Errorf("engine.script must not be empty")
	}
	if c.Conflict.MaxRandomAttempts < 0 {
		return fmt.Errorf("conflict.max_random_attempts must not be negative, got %d", c.Conflict.MaxRandomAttempts)
	}
	switch strings.ToLower(c.UI.Format) {
	case "auto", "term", "terminal", "text", "plain":
	default:
		return fmt.Errorf("ui.format must be one of auto, term, text; got %q", c.UI.Format)
	}
	return nil
}
