// Package conflict decides where an output file may be written when the
// proposed path is already taken.
package conflict

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/savecrypt/pkg/errors"
	"github.com/arthur-debert/savecrypt/pkg/logging"
	"github.com/arthur-debert/savecrypt/pkg/types"
)

// Rename suffixes are four-digit numerals in this inclusive range
const (
	SuffixMin = 1000
	SuffixMax = 9999

	suffixCount = SuffixMax - SuffixMin + 1

	// DefaultMaxRandomAttempts is the number of random draws before the
	// resolver sweeps every suffix in order
	DefaultMaxRandomAttempts = 64
)

// Resolver turns a proposed output path into a final one, asking the
// Notifier when the path already exists. It never writes to disk.
type Resolver struct {
	notifier          types.Notifier
	exists            func(path string) bool
	rng               *rand.Rand
	maxRandomAttempts int
}

// Option configures a Resolver
type Option func(*Resolver)

// WithExists replaces the filesystem existence probe
func WithExists(exists func(path string) bool) Option {
	return func(r *Resolver) { r.exists = exists }
}

// WithRand sets the random source used to draw suffixes
func WithRand(rng *rand.Rand) Option {
	return func(r *Resolver) { r.rng = rng }
}

// WithMaxRandomAttempts caps the random draws before the ordered sweep
func WithMaxRandomAttempts(n int) Option {
	return func(r *Resolver) { r.maxRandomAttempts = n }
}

// NewResolver creates a Resolver that asks notifier about collisions
func NewResolver(notifier types.Notifier, opts ...Option) *Resolver {
	r := &Resolver{
		notifier:          notifier,
		exists:            pathExists,
		rng:               rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		maxRandomAttempts: DefaultMaxRandomAttempts,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveOutputPath returns the path the output should be written to. A
// path that does not exist is returned as is, without asking anyone. If the
// user cancels, the error carries ErrConflictCancelled.
func (r *Resolver) ResolveOutputPath(proposed string) (string, error) {
	logger := logging.GetLogger("conflict")

	if !r.exists(proposed) {
		return proposed, nil
	}

	fileName := filepath.Base(proposed)
	decision, err := r.notifier.ChooseConflictDisposition(fileName)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNotifier, "failed to ask what to do with %s", fileName)
	}
	logger.Info().Str("path", proposed).Str("decision", string(decision)).Msg("Output exists")

	switch decision {
	case types.DecisionOverwrite:
		return proposed, nil
	case types.DecisionRename:
		return r.UniqueName(proposed)
	case types.DecisionCancel:
		return "", errors.New(errors.ErrConflictCancelled, "Operation cancelled").
			WithDetail("path", proposed)
	default:
		return "", errors.Newf(errors.ErrInternal, "unknown conflict decision %q", decision)
	}
}

// UniqueName returns "<stem>_<NNNN><ext>" next to path for the first
// four-digit suffix that does not exist. Suffixes are drawn at random first;
// once the random budget is spent every suffix is tried from a random
// starting point, so a free suffix is always found if one remains.
func (r *Resolver) UniqueName(path string) (string, error) {
	logger := logging.GetLogger("conflict")
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	for i := 0; i < r.maxRandomAttempts; i++ {
		candidate := Candidate(dir, stem, ext, SuffixMin+r.rng.IntN(suffixCount))
		if !r.exists(candidate) {
			return candidate, nil
		}
	}

	logger.Debug().Int("attempts", r.maxRandomAttempts).Str("path", path).
		Msg("Random suffixes exhausted, sweeping all suffixes")

	start := r.rng.IntN(suffixCount)
	for i := 0; i < suffixCount; i++ {
		candidate := Candidate(dir, stem, ext, SuffixMin+(start+i)%suffixCount)
		if !r.exists(candidate) {
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrRenameExhausted,
		"every name from %s_%d%s to %s_%d%s already exists", stem, SuffixMin, ext, stem, SuffixMax, ext).
		WithDetail("dir", dir)
}

// Candidate builds the rename candidate for a given suffix
func Candidate(dir, stem, ext string, suffix int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, suffix, ext))
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
