package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeadline_AllFormatsAgree(t *testing.T) {
	inputs := []string{
		"31.12.2030 23:59",
		"2030.12.31 23:59",
		"31-12-2030 23:59",
		"2030-12-31 23:59",
	}

	expected := time.Date(2030, time.December, 31, 23, 59, 0, 0, time.Local)
	for _, input := range inputs {
		parsed, err := ParseDeadline(input)
		require.NoError(t, err, "input %q", input)
		assert.True(t, parsed.Equal(expected), "input %q parsed to %v", input, parsed)
	}
}

func TestParseDeadline_RejectsUnknownFormat(t *testing.T) {
	_, err := ParseDeadline("2030/12/31 23:59")
	require.Error(t, err)

	for _, hint := range []string{
		"DD.MM.YYYY HH:MM",
		"YYYY.MM.DD HH:MM",
		"DD-MM-YYYY HH:MM",
		"YYYY-MM-DD HH:MM",
	} {
		assert.Contains(t, err.Error(), hint)
	}
}

func TestParseDeadline_RequiresTimeComponent(t *testing.T) {
	_, err := ParseDeadline("31.12.2030")
	assert.Error(t, err)
}
