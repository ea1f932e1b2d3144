// Package config loads savecrypt's settings.
//
// Settings are layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. platform defaults computed at runtime
//  3. the per-user file at $XDG_CONFIG_HOME/savecrypt/config.toml
//  4. savecrypt.toml next to the program
//  5. SAVECRYPT_<SECTION>_<KEY> environment variables
//
// User files are checked strictly before merging so a misspelled key is
// reported instead of silently ignored.
package config
