package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// LoadConfig itself registers flags on the global FlagSet, so it can only
// run once per process; the helpers carry the logic worth unit testing.

func TestGetEnv(t *testing.T) {
	t.Setenv("ADSERVER_TEST_VAR", "hello")
	assert.Equal(t, "hello", getEnv("ADSERVER_TEST_VAR", "fallback"))
	assert.Equal(t, "fallback", getEnv("ADSERVER_TEST_VAR_MISSING", "fallback"))

	// An empty value still counts as set.
	t.Setenv("ADSERVER_TEST_EMPTY", "")
	assert.Equal(t, "", getEnv("ADSERVER_TEST_EMPTY", "fallback"))
}

func TestGetEnvBool(t *testing.T) {
	cases := map[string]bool{
		"true": true, "TRUE": true, "1": true, "yes": true,
		"false": false, "0": false, "No": false,
	}
	for value, want := range cases {
		t.Setenv("ADSERVER_TEST_BOOL", value)
		assert.Equal(t, want, getEnvBool("ADSERVER_TEST_BOOL", !want), value)
	}

	// Unparseable values fall back to the default.
	t.Setenv("ADSERVER_TEST_BOOL", "maybe")
	assert.True(t, getEnvBool("ADSERVER_TEST_BOOL", true))
	assert.False(t, getEnvBool("ADSERVER_TEST_BOOL", false))

	assert.True(t, getEnvBool("ADSERVER_TEST_BOOL_MISSING", true))
}

func TestGenerateRandomKey(t *testing.T) {
	key, err := generateRandomKey(32)
	require.NoError(t, err)
	assert.Len(t, key, 64, "32 bytes hex-encode to 64 characters")

	other, err := generateRandomKey(32)
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}
