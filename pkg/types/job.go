package types

import (
	"path/filepath"
	"strings"
)

// ConversionJob describes a single conversion run. It is built once from the
// command-line input and is not modified after the output path is finalized.
type ConversionJob struct {
	InputPath  string
	InputKind  Kind
	OutputPath string
	OutputKind Kind
	Identity   string
	ExtraFlags []string
}

// Direction returns the engine direction for the job
func (j ConversionJob) Direction() Direction {
	return j.InputKind.Direction()
}

// NewConversionJob classifies inputPath and proposes the output path next to
// it, with the complementary kind's extension. The second return value is
// false when the extension is not recognized.
func NewConversionJob(inputPath string) (ConversionJob, bool) {
	kind, ok := KindFromPath(inputPath)
	if !ok {
		return ConversionJob{}, false
	}
	out := kind.Complement()
	return ConversionJob{
		InputPath:  inputPath,
		InputKind:  kind,
		OutputPath: SwapExtension(inputPath, out.Extension()),
		OutputKind: out,
		ExtraFlags: []string{kind.Direction().SerialsFlag()},
	}, true
}

// SwapExtension replaces the extension of path with ext, keeping directory
// and stem.
func SwapExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
