package types_test

import (
	"testing"

	"github.com/arthur-debert/savecrypt/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantKind types.Kind
		wantOK   bool
	}{
		{"yaml", "save.yaml", types.KindStructured, true},
		{"upper yaml", "/saves/SAVE.YAML", types.KindStructured, true},
		{"sav", "1.sav", types.KindEncrypted, true},
		{"mixed sav", "profile.SaV", types.KindEncrypted, true},
		{"yml is not recognized", "save.yml", "", false},
		{"txt", "notes.txt", "", false},
		{"no extension", "save", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := types.KindFromPath(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestKindComplementIsInvolution(t *testing.T) {
	for _, k := range []types.Kind{types.KindStructured, types.KindEncrypted} {
		assert.NotEqual(t, k, k.Complement())
		assert.Equal(t, k, k.Complement().Complement())
	}
}

func TestDirectionFlags(t *testing.T) {
	assert.Equal(t, types.DirectionEncrypt, types.KindStructured.Direction())
	assert.Equal(t, types.DirectionDecrypt, types.KindEncrypted.Direction())
	assert.Equal(t, "--encode-serials", types.DirectionEncrypt.SerialsFlag())
	assert.Equal(t, "--decode-serials", types.DirectionDecrypt.SerialsFlag())
}

func TestNewConversionJob(t *testing.T) {
	t.Run("encode direction", func(t *testing.T) {
		job, ok := types.NewConversionJob("/saves/save.yaml")
		require.True(t, ok)
		assert.Equal(t, types.KindStructured, job.InputKind)
		assert.Equal(t, types.KindEncrypted, job.OutputKind)
		assert.Equal(t, "/saves/save.sav", job.OutputPath)
		assert.Equal(t, types.DirectionEncrypt, job.Direction())
		assert.Equal(t, []string{"--encode-serials"}, job.ExtraFlags)
	})

	t.Run("decode direction uses canonical lowercase extension", func(t *testing.T) {
		job, ok := types.NewConversionJob("/saves/Profile.SAV")
		require.True(t, ok)
		assert.Equal(t, "/saves/Profile.yaml", job.OutputPath)
		assert.Equal(t, types.DirectionDecrypt, job.Direction())
		assert.Equal(t, []string{"--decode-serials"}, job.ExtraFlags)
	})

	t.Run("dotted stem keeps its inner dots", func(t *testing.T) {
		job, ok := types.NewConversionJob("my.save.v2.yaml")
		require.True(t, ok)
		assert.Equal(t, "my.save.v2.sav", job.OutputPath)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, ok := types.NewConversionJob("notes.txt")
		assert.False(t, ok)
	})
}

func TestParseConflictDecision(t *testing.T) {
	for _, d := range types.ConflictDecisions {
		got, err := types.ParseConflictDecision(d.Label())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := types.ParseConflictDecision("r")
	require.NoError(t, err)
	assert.Equal(t, types.DecisionRename, got)

	_, err = types.ParseConflictDecision("maybe")
	assert.Error(t, err)
}
