package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfgpkg "github.com/alexisbeaulieu97/focuskit/internal/config"
	"github.com/alexisbeaulieu97/focuskit/internal/infrastructure/logging"
	apperrors "github.com/alexisbeaulieu97/focuskit/pkg/errors"
)

func newTestLoader() (*YAMLLoader, *logging.EventBuffer) {
	buffer := logging.NewEventBuffer(32)
	return NewYAMLLoader(logging.NewBufferedLogger(buffer)), buffer
}

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestYAMLLoaderLoadSuccess(t *testing.T) {
	t.Parallel()

	loader, buffer := newTestLoader()
	path := writeConfig(t, "focuskit.yaml", `version: "1.0"
navigation:
  orientation: horizontal
`)

	cfg, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "horizontal", cfg.Navigation.Orientation)
	assert.Contains(t, buffer.Messages(), "configuration loaded")
}

func TestYAMLLoaderEmptyPathUsesDefaults(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	cfg, err := loader.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, cfgpkg.Default(), cfg)
}

func TestYAMLLoaderLoadMissingFile(t *testing.T) {
	t.Parallel()

	loader, buffer := newTestLoader()
	_, err := loader.Load(context.Background(), "does-not-exist.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, buffer.Messages(), "failed to load configuration")
}

func TestYAMLLoaderCancelledContext(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, "whatever.yaml")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestYAMLLoaderValidate(t *testing.T) {
	t.Parallel()

	loader, _ := newTestLoader()
	ctx := context.Background()

	valid := writeConfig(t, "ok.yml", "version: \"1.0\"\n")
	require.NoError(t, loader.Validate(ctx, valid))

	invalid := writeConfig(t, "bad.yaml", "version: \"1.0\"\nnavigation:\n  orientation: both\n")
	err := loader.Validate(ctx, invalid)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	wrongExt := writeConfig(t, "config.json", "{}")
	assert.ErrorIs(t, loader.Validate(ctx, wrongExt), ErrUnsupportedExtension)

	err = loader.Validate(ctx, t.TempDir())
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "path", validationErr.Field)
}
