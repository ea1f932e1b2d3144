package config

import (
	"os"
	"runtime"
	"strings"

	"github.com/arthur-debert/savecrypt/pkg/errors"
	"github.com/arthur-debert/savecrypt/pkg/logging"
	"github.com/arthur-debert/savecrypt/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	tomlv2 "github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "SAVECRYPT_"

// LoadConfiguration merges every configuration layer for the given paths
func LoadConfiguration(p paths.Paths) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	// 2. Runtime defaults only fill what the embedded file leaves empty
	runtimeDefaults := map[string]interface{}{}
	if k.String("engine.command") == "" {
		runtimeDefaults["engine.command"] = defaultInterpreter()
	}
	if err := k.Load(confmap.Provider(runtimeDefaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load runtime defaults")
	}

	// 3. User and program-local files
	for _, path := range []string{p.UserConfigPath(), p.LocalConfigPath()} {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config file %s", path)
		}
		if err := checkStrict(path); err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}

	logger.Debug().
		Str("credentialFile", cfg.Credential.File).
		Str("engineCommand", cfg.Engine.Command).
		Str("engineScript", cfg.Engine.Script).
		Int("maxRandomAttempts", cfg.Conflict.MaxRandomAttempts).
		Str("format", cfg.UI.Format).
		Msg("Configuration loaded")

	return &cfg, nil
}

// envKey maps SAVECRYPT_ENGINE_COMMAND to engine.command. Only the first
// underscore separates section from key, so keys may contain underscores.
// Variables that are not section_key pairs are skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, name, ok := strings.Cut(key, "_")
	if !ok || name == "" {
		return ""
	}
	switch section {
	case "credential", "engine", "conflict", "ui":
		return section + "." + name
	default:
		return ""
	}
}

// checkStrict decodes a user config file into Config, rejecting keys that
// savecrypt does not know about.
func checkStrict(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to open config file %s", path)
	}
	defer func() { _ = f.Close() }()

	var probe Config
	dec := tomlv2.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&probe); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "invalid config file %s", path).
			WithDetail("path", path)
	}
	return nil
}

// defaultInterpreter is the Python launcher expected on the platform
func defaultInterpreter() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}
