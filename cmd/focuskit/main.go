package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/focuskit/internal/config"
	"github.com/alexisbeaulieu97/focuskit/internal/infrastructure/logging"
	apperrors "github.com/alexisbeaulieu97/focuskit/pkg/errors"
)

func main() {
	logger, err := logging.NewFromSettings(config.Default().Log.Settings(os.Stderr, "cli"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(newAppContext(logger)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps configuration problems to 2 and everything else to 1.
func exitCode(err error) int {
	var parseErr *apperrors.ParseError
	var validationErr *apperrors.ValidationError
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) {
		return 2
	}
	return 1
}
