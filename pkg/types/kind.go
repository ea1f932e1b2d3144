package types

import (
	"path/filepath"
	"strings"
)

// Kind is the representation a save file is stored in
type Kind string

const (
	// KindStructured is the human-editable text form of a save
	KindStructured Kind = "structured"
	// KindEncrypted is the binary, identity-bound form of a save
	KindEncrypted Kind = "encrypted"
)

// Canonical extensions for each kind
const (
	ExtStructured = ".yaml"
	ExtEncrypted  = ".sav"
)

// Extension returns the canonical file extension for the kind
func (k Kind) Extension() string {
	switch k {
	case KindStructured:
		return ExtStructured
	case KindEncrypted:
		return ExtEncrypted
	default:
		return ""
	}
}

// Complement returns the kind a file of this kind converts into
func (k Kind) Complement() Kind {
	switch k {
	case KindStructured:
		return KindEncrypted
	case KindEncrypted:
		return KindStructured
	default:
		return ""
	}
}

// Direction returns the transform direction that consumes this kind
func (k Kind) Direction() Direction {
	switch k {
	case KindStructured:
		return DirectionEncrypt
	case KindEncrypted:
		return DirectionDecrypt
	default:
		return ""
	}
}

// KindFromPath classifies a path by its extension, case-insensitively.
func KindFromPath(path string) (Kind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtStructured:
		return KindStructured, true
	case ExtEncrypted:
		return KindEncrypted, true
	default:
		return "", false
	}
}

// Direction is the command keyword passed to the transform engine
type Direction string

const (
	DirectionEncrypt Direction = "encrypt"
	DirectionDecrypt Direction = "decrypt"
)

// SerialsFlag returns the direction-specific flag for item serials
func (d Direction) SerialsFlag() string {
	switch d {
	case DirectionEncrypt:
		return "--encode-serials"
	case DirectionDecrypt:
		return "--decode-serials"
	default:
		return ""
	}
}

// ProgressVerb is the short status line shown while the engine runs
func (d Direction) ProgressVerb() string {
	switch d {
	case DirectionEncrypt:
		return "Running encryption..."
	case DirectionDecrypt:
		return "Running decryption..."
	default:
		return "Running..."
	}
}
