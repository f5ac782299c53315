package simplify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.CheckInit())
	assert.False(t, cfg.Debug)
}

func TestReadConfig(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "simplify.ini")
	text := "[Simplify]\nMaxBinomialTerms = 12\nMaxOperatorTerms = 0\nDebug = true\n"
	require.NoError(t, os.WriteFile(fname, []byte(text), 0o644))

	cfg, err := ReadConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, int64(12), cfg.MaxBinomialTerms)
	assert.Equal(t, int64(0), cfg.MaxOperatorTerms)
	assert.True(t, cfg.Debug)
	assert.Equal(t, DefaultConfig().MaxExponent, cfg.MaxExponent)
}

func TestReadConfigErrors(t *testing.T) {
	vs := []string{
		"[Simplify]\nmaxexponent = 0\n",
		"[Simplify]\nmaxmultipleangle = 1\n",
		"[Simplify]\nmaxoperatorterms = -1\n",
		"[Simplify]\nnosuchlimit = 3\n",
		"[Simplify]\nmaxexponent = lots\n",
	}
	for i, text := range vs {
		_, err := ReadConfigString(text)
		assert.Error(t, err, "[%d] %q", i, text)
	}

	_, err := ReadConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
