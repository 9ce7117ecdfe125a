package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalize_ZBecomesExplicitOffset(t *testing.T) {
	req := require.New(t)

	out, err := Normalize("2025-08-17T20:00:00Z")
	req.NoError(err)
	req.Equal("2025-08-17T20:00:00+00:00", out)
}

func TestNormalize_PreservesOffset(t *testing.T) {
	req := require.New(t)

	out, err := Normalize("2025-08-17T20:00:00+05:30")
	req.NoError(err)
	req.Equal("2025-08-17T20:00:00+05:30", out)

	out, err = Normalize("2025-08-17T20:00:00-03:00")
	req.NoError(err)
	req.Equal("2025-08-17T20:00:00-03:00", out)
}

func TestNormalize_TruncatesFractionalSeconds(t *testing.T) {
	req := require.New(t)

	out, err := Normalize("2025-08-17T20:00:00.987654Z")
	req.NoError(err)
	req.Equal("2025-08-17T20:00:00+00:00", out)
}

func TestNormalize_AcceptsSpaceSeparator(t *testing.T) {
	req := require.New(t)

	out, err := Normalize("2025-08-17 20:00:00+00:00")
	req.NoError(err)
	req.Equal("2025-08-17T20:00:00+00:00", out)
}

func TestNormalize_TrimsSurroundingWhitespace(t *testing.T) {
	req := require.New(t)

	out, err := Normalize("  2025-08-17T20:00:00Z  ")
	req.NoError(err)
	req.Equal("2025-08-17T20:00:00+00:00", out)
}

func TestNormalize_EmptyInput(t *testing.T) {
	req := require.New(t)

	_, err := Normalize("")
	req.ErrorIs(err, ErrEmpty)

	_, err = Normalize("   ")
	req.ErrorIs(err, ErrEmpty)
}

func TestNormalize_RejectsNaiveTimestamps(t *testing.T) {
	req := require.New(t)

	for _, in := range []string{
		"2025-08-17T20:00:00",
		"2025-08-17 20:00:00",
		"2025-08-17",
	} {
		_, err := Normalize(in)
		req.ErrorIs(err, ErrMissingTimezone, "input %q", in)
	}
}

func TestNormalize_RejectsNonISO(t *testing.T) {
	req := require.New(t)

	for _, in := range []string{
		"2025/08/17 20:00",
		"17-08-2025T20:00:00Z",
		"not a timestamp",
		"2025-13-40T99:99:99Z",
	} {
		_, err := Normalize(in)
		req.ErrorIs(err, ErrInvalidFormat, "input %q", in)
	}
}

func TestNow_CanonicalForm(t *testing.T) {
	req := require.New(t)

	out := Now()
	req.True(len(out) == len("2006-01-02T15:04:05+00:00"))
	req.Contains(out, "+00:00")

	// round-trips through its own parser
	norm, err := Normalize(out)
	req.NoError(err)
	req.Equal(out, norm)

	parsed, err := time.Parse("2006-01-02T15:04:05-07:00", out)
	req.NoError(err)
	req.Zero(parsed.Nanosecond())
}
