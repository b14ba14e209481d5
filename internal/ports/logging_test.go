package ports

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestSessionIDRoundTripsThroughContext(t *testing.T) {
	t.Parallel()

	ctx := WithSessionID(context.Background(), "session-1")
	require.Equal(t, "session-1", GetSessionID(ctx))
	require.Empty(t, GetSessionID(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	require.Empty(t, GetSessionID(nil))
}

func TestGenerateSessionIDIsUUIDv4(t *testing.T) {
	t.Parallel()

	first := GenerateSessionID()
	second := GenerateSessionID()
	require.Regexp(t, uuidV4, first)
	require.NotEqual(t, first, second)
}
