package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateTime(t *testing.T) {
	instant := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-15 10:30:00", FormatDateTime(instant))
}

func TestFormatDateTimeNormalizesZone(t *testing.T) {
	zone := time.FixedZone("CST", 8*60*60)
	instant := time.Date(2024, 1, 15, 18, 30, 0, 0, zone)
	assert.Equal(t, "2024-01-15 10:30:00", FormatDateTime(instant))
}

func TestParseDateTimeRoundTrip(t *testing.T) {
	instant := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	parsed, err := ParseDateTime(FormatDateTime(instant))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(instant))
}

func TestParseDateTimeRejectsGarbage(t *testing.T) {
	_, err := ParseDateTime("not-a-timestamp")
	assert.Error(t, err)
}

func TestUTCNowIsUTCAndSecondPrecision(t *testing.T) {
	now := UTCNow()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond())
}
