package engine

import (
	"fmt"

	"github.com/arthur-debert/savecrypt/pkg/types"
)

// Argument names understood by the transform tool
const (
	ArgInput    = "-in"
	ArgOutput   = "-out"
	ArgIdentity = "-id"
)

// BuildArgs constructs the transform tool's arguments for a job:
//
//	<script> <encrypt|decrypt> -in <input> -out <output> -id <identity> <flags...>
func BuildArgs(script string, job types.ConversionJob) ([]string, error) {
	if script == "" {
		return nil, fmt.Errorf("transform script is required")
	}
	if job.InputPath == "" {
		return nil, fmt.Errorf("input path is required")
	}
	if job.OutputPath == "" {
		return nil, fmt.Errorf("output path is required")
	}
	if job.Identity == "" {
		return nil, fmt.Errorf("identity is required")
	}

	direction := job.Direction()
	switch direction {
	case types.DirectionEncrypt, types.DirectionDecrypt:
	default:
		return nil, fmt.Errorf("unsupported input kind: %q", job.InputKind)
	}

	args := []string{
		script,
		string(direction),
		ArgInput, job.InputPath,
		ArgOutput, job.OutputPath,
		ArgIdentity, job.Identity,
	}
	args = append(args, job.ExtraFlags...)
	return args, nil
}
