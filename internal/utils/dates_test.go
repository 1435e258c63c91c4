package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateFormats(t *testing.T) {
	cases := map[string]time.Time{
		"1995-05-01": time.Date(1995, 5, 1, 0, 0, 0, 0, time.UTC),
		"2000/07/15": time.Date(2000, 7, 15, 0, 0, 0, 0, time.UTC),
		"15/07/2000": time.Date(2000, 7, 15, 0, 0, 0, 0, time.UTC),
		"15-07-2000": time.Date(2000, 7, 15, 0, 0, 0, 0, time.UTC),
		// 日位超过 12，只有 MM/DD 能解释
		"07/15/2000": time.Date(2000, 7, 15, 0, 0, 0, 0, time.UTC),
		"07-15-2000": time.Date(2000, 7, 15, 0, 0, 0, 0, time.UTC),
	}

	for input, want := range cases {
		got, err := ParseDate(input)
		require.NoError(t, err, input)
		assert.True(t, want.Equal(got), "%s: got %v", input, got)
	}
}

func TestParseDateAmbiguityOrder(t *testing.T) {
	// 01/02/2020 在 DD/MM 和 MM/DD 下都合法，
	// 列表里 DD/MM 在前，所以必须按 2 月 1 日解析
	got, err := ParseDate("01/02/2020")
	require.NoError(t, err)
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, 2020, got.Year())
}

func TestParseDateFailure(t *testing.T) {
	_, err := ParseDate("")
	assert.Error(t, err)

	_, err = ParseDate("circa 1980")
	assert.Error(t, err)

	_, err = ParseDate("31/31/2020")
	assert.Error(t, err)
}
