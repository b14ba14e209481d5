package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	cfgpkg "github.com/alexisbeaulieu97/focuskit/internal/config"
	"github.com/alexisbeaulieu97/focuskit/internal/ports"
	apperrors "github.com/alexisbeaulieu97/focuskit/pkg/errors"
)

// ErrUnsupportedExtension is returned for configuration files that are not
// YAML.
var ErrUnsupportedExtension = errors.New("unsupported configuration file extension")

// YAMLLoader reads focuskit configuration files from disk and logs what it
// does.
type YAMLLoader struct {
	logger ports.Logger
}

func NewYAMLLoader(logger ports.Logger) *YAMLLoader {
	return &YAMLLoader{logger: logger}
}

// Load parses path, or returns the defaults when path is empty.
func (l *YAMLLoader) Load(ctx context.Context, path string) (*cfgpkg.Config, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	if path == "" {
		l.logDebug(ctx, "no configuration file given; using defaults", nil)
		return cfgpkg.Default(), nil
	}

	l.logDebug(ctx, "loading configuration", map[string]interface{}{"path": path})

	cfg, err := cfgpkg.ParseConfig(path)
	if err != nil {
		l.logError(ctx, "failed to load configuration", err, describe(err, path))
		return nil, err
	}

	l.logInfo(ctx, "configuration loaded", map[string]interface{}{
		"path":        path,
		"orientation": cfg.Navigation.Orientation,
		"politeness":  cfg.Announcer.Politeness,
	})
	return cfg, nil
}

// Validate checks that path is a readable YAML file holding a valid
// configuration.
func (l *YAMLLoader) Validate(ctx context.Context, path string) error {
	if err := contextCheck(ctx); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		l.logError(ctx, "configuration path stat failed", err, map[string]interface{}{"path": path})
		return apperrors.NewParseError(path, 0, err)
	}
	if info.IsDir() {
		return apperrors.NewValidationError("path", fmt.Sprintf("%s is a directory", path), nil)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		l.logDebug(ctx, "validating configuration", map[string]interface{}{"path": path})
		_, err = l.Load(ctx, path)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
}

func describe(err error, path string) map[string]interface{} {
	fields := map[string]interface{}{"path": path}
	var parseErr *apperrors.ParseError
	if errors.As(err, &parseErr) && parseErr.Line > 0 {
		fields["line"] = parseErr.Line
	}
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) && valErr.Field != "" {
		fields["field"] = valErr.Field
	}
	return fields
}

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("configuration load cancelled: %w", err)
	}
	return nil
}

func (l *YAMLLoader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
