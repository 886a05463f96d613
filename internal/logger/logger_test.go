package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(b, &entry))
	return entry
}

// TestNew_RoleField verifies that every record contains the "role" field.
func TestNew_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test-role", "info")

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "test-role", entry["role"])
}

// TestNew_ContainsTimestamp verifies that records contain a timestamp field.
func TestNew_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "ts-role", "info")

	l.Info().Msg("ts check")

	entry := decodeEntry(t, buf.Bytes())
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNew_CallerFieldName verifies that the caller field is named "func".
func TestNew_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "caller-role", "info")

	l.Info().Msg("caller")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	entry := decodeEntry(t, buf.Bytes())
	assert.Contains(t, entry["func"], "TestNew_CallerFieldName")
}

// TestNew_Level verifies that records below the configured level are dropped.
func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "level-role", "warn")

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

// TestNew_UnknownLevelFallsBackToInfo verifies the fallback level.
func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "level-role", "chatty")

	l.Debug().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Info().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

// TestNewClientLogger_WritesToFile verifies that records land in the file
// and that the file and its directory are private.
func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vault.log")

	l := NewClientLogger("client", path, "debug")
	l.Info().Msg("to file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// TestNewClientLogger_Appends verifies that a second logger appends to the
// same file.
func TestNewClientLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.log")

	first := NewClientLogger("client", path, "info")
	first.Info().Msg("first")
	require.NoError(t, first.Close())

	second := NewClientLogger("client", path, "info")
	second.Info().Msg("second")
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

// TestNewClientLogger_FallsBackToNop verifies that an unusable path yields a
// working logger instead of an error.
func TestNewClientLogger_FallsBackToNop(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, nil, 0o600))

	l := NewClientLogger("client", filepath.Join(parent, "vault.log"), "info")
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("discarded") })
	assert.NoError(t, l.Close())
}

// TestNewClientLogger_EmptyPath verifies that no path means no logging.
func TestNewClientLogger_EmptyPath(t *testing.T) {
	l := NewClientLogger("client", "", "info")
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestWithSession verifies the session field.
func TestWithSession(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "client", "info").WithSession("abc-123")

	l.Info().Msg("tagged")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "abc-123", entry["session"])
	assert.Equal(t, "client", entry["role"])
}
