package logging_test

import (
	"errors"
	"testing"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	log := &logging.MockLogger{}

	log.Info("first", logging.F(logging.FieldYear, 2024))
	log.Warn("second")

	require.Len(t, log.Entries, 2)
	assert.Equal(t, "INFO", log.Entries[0].Level)
	assert.Equal(t, "first", log.Entries[0].Message)
	assert.Equal(t, logging.FieldYear, log.Entries[0].Fields[0].Key)
	assert.Equal(t, "WARN", log.Entries[1].Level)

	assert.True(t, log.HasMessage("second"))
	assert.False(t, log.HasMessage("third"))
}

func TestMockLoggerWithError(t *testing.T) {
	log := &logging.MockLogger{}
	cause := errors.New("boom")

	log.WithError(cause).Error("failed")

	require.Len(t, log.Entries, 1)
	assert.Equal(t, cause, log.Entries[0].Err)
}

func TestMockLoggerWithFields(t *testing.T) {
	log := &logging.MockLogger{}

	log.WithField(logging.FieldFile, "a.csv").Info("read")

	require.Len(t, log.Entries, 1)
	require.NotEmpty(t, log.Entries[0].Fields)
	assert.Equal(t, "a.csv", log.Entries[0].Fields[0].Value)
}

func TestMockLoggerScopesContextToOneEntry(t *testing.T) {
	log := &logging.MockLogger{}
	cause := errors.New("boom")

	log.WithError(cause).WithField(logging.FieldFile, "a.csv").Error("failed")
	log.Info("recovered")

	require.Len(t, log.Entries, 2)
	assert.Equal(t, cause, log.Entries[0].Err)
	require.NotEmpty(t, log.Entries[0].Fields)

	// The second entry must not inherit the first one's error or fields.
	assert.NoError(t, log.Entries[1].Err)
	assert.Empty(t, log.Entries[1].Fields)
}

func TestNewLogrusAdapter(t *testing.T) {
	assert.NotNil(t, logging.NewLogrusAdapter("debug", "json"))
	// An invalid level falls back to info instead of failing.
	assert.NotNil(t, logging.NewLogrusAdapter("shouting", "text"))
}

func TestDefaultLogger(t *testing.T) {
	original := logging.GetLogger()
	defer logging.SetDefault(original)

	mock := &logging.MockLogger{}
	logging.SetDefault(mock)
	logging.GetLogger().Info("hello")

	assert.True(t, mock.HasMessage("hello"))
}

func TestF(t *testing.T) {
	f := logging.F("k", 42)
	assert.Equal(t, "k", f.Key)
	assert.Equal(t, 42, f.Value)
}
