package idx_test

import (
	"testing"
	"time"

	"github.com/dormdesk/dormdesk/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewProducesValidSortedIDs(t *testing.T) {
	t.Parallel()

	a := idx.New()
	b := idx.New()

	_, err := idx.Parse(a.String())
	require.NoError(t, err)
	_, err = idx.Parse(b.String())
	require.NoError(t, err)

	// Monotonic entropy guarantees ordering even within the same millisecond.
	require.Less(t, a.String(), b.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	cases := []string{"", "   ", "not-a-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FA"} // last one is too short
	for _, c := range cases {
		_, err := idx.Parse(c)
		require.ErrorIs(t, err, idx.ErrInvalid, "input %q", c)
	}
}

func TestNewAtEmbedsTimestamp(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := idx.NewAt(at)

	require.Equal(t, at.UnixMilli(), id.Time().UnixMilli())
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	require.True(t, idx.Zero.IsZero())
	require.False(t, idx.New().IsZero())
}
