package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/interstatex/pkg"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".", config.OutputDir)
	assert.Equal(t, pkg.SERVES_OUTPUT_FILE, config.ServesOutputFile)
	assert.Equal(t, pkg.PATH_OUTPUT_FILE, config.PathOutputFile)
	assert.False(t, config.CompressOutput)
	assert.Equal(t, pkg.LENGTH_TOLERANCE_MILES, config.LengthTolerance)
	assert.Equal(t, pkg.COLOCATED_RADIUS_MILES, config.ColocatedRadius)

	assert.Equal(t, "us_primary_interstates_path.graphson", config.OutputPath(config.PathOutputFile))
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	content := []byte("OUTPUT_DIR: out\nPATH_OUTPUT_FILE: path.graphson\nCOMPRESS_OUTPUT: true\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "out", config.OutputDir)
	assert.True(t, config.CompressOutput)
	assert.Equal(t, filepath.Join("out", "path.graphson.bz2"), config.OutputPath(config.PathOutputFile))
	assert.Equal(t, filepath.Join("out", pkg.SERVES_OUTPUT_FILE+".bz2"), config.OutputPath(config.ServesOutputFile))
}

func TestLoadConfigInvalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	content := []byte("SERVES_OUTPUT_FILE: nested/graph.graphson\nVERIFY_LENGTH_TOLERANCE_MILES: -1\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Equal(t, ErrBadParamInput, ErrorCode(err))
	assert.Contains(t, err.Error(), "ServesOutputFile")
	assert.Contains(t, err.Error(), "LengthTolerance")
}

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid",
			config: Config{OutputDir: ".", ServesOutputFile: "a.graphson", PathOutputFile: "b.graphson",
				LengthTolerance: 0.5, ColocatedRadius: 1},
		},
		{
			name:    "empty output dir",
			config:  Config{ServesOutputFile: "a.graphson", PathOutputFile: "b.graphson"},
			wantErr: true,
		},
		{
			name: "negative radius",
			config: Config{OutputDir: ".", ServesOutputFile: "a.graphson", PathOutputFile: "b.graphson",
				ColocatedRadius: -1},
			wantErr: true,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("disk full")
	err := WrapErrorf(orig, ErrInternalServerError, "write %s", "graph.graphson")

	assert.Equal(t, "write graph.graphson: disk full", err.Error())
	assert.True(t, errors.Is(err, orig))
	assert.Equal(t, ErrInternalServerError, ErrorCode(err))
	assert.Nil(t, ErrorCode(orig))
	assert.Equal(t, "bad", WrapErrorf(nil, ErrBadParamInput, "bad").Error())
}

func TestErrorCodeSentinels(t *testing.T) {
	testCases := []struct {
		name string
		code error
	}{
		{name: "internal", code: ErrInternalServerError},
		{name: "not found", code: ErrNotFound},
		{name: "bad param", code: ErrBadParamInput},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("outer: %w", WrapErrorf(errors.New("cause"), tt.code, "inner"))
			assert.Equal(t, tt.code, ErrorCode(err))
			for _, other := range testCases {
				if other.code != tt.code {
					assert.NotEqual(t, other.code, ErrorCode(err))
				}
			}
		})
	}
}
