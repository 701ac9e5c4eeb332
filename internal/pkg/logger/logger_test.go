package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func readRecords(t *testing.T, path string) []map[string]any {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var records []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, scanner.Err())
	return records
}

func TestNew_SplitsErrorAndCombinedFiles(t *testing.T) {
	dir := t.TempDir()
	errorFile := filepath.Join(dir, "error.log")
	combinedFile := filepath.Join(dir, "combined.log")
	var stdout bytes.Buffer

	log, cleanup, err := New(Config{
		Level:        "info",
		Format:       "json",
		ServiceName:  "calculator-service",
		ErrorFile:    errorFile,
		CombinedFile: combinedFile,
		Stdout:       zapcore.AddSync(&stdout),
	})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("Numbers 1 and 5 received for addition.")
	log.Error("Invalid number 'foo' received for parameter n1.")
	cleanup()

	combined := readRecords(t, combinedFile)
	require.Len(t, combined, 2)
	assert.Equal(t, "info", combined[0]["level"])
	assert.Equal(t, "Numbers 1 and 5 received for addition.", combined[0]["message"])
	assert.Equal(t, "calculator-service", combined[0]["service"])
	assert.NotEmpty(t, combined[0]["timestamp"])
	assert.Equal(t, "error", combined[1]["level"])

	errors := readRecords(t, errorFile)
	require.Len(t, errors, 1)
	assert.Equal(t, "Invalid number 'foo' received for parameter n1.", errors[0]["message"])

	assert.Contains(t, stdout.String(), "received for addition")
	assert.NotContains(t, stdout.String(), "hidden")
}

func TestNew_AppendsToExistingFiles(t *testing.T) {
	dir := t.TempDir()
	combinedFile := filepath.Join(dir, "combined.log")

	for i := 0; i < 2; i++ {
		log, cleanup, err := New(Config{
			Level:        "info",
			CombinedFile: combinedFile,
			Stdout:       zapcore.AddSync(&bytes.Buffer{}),
		})
		require.NoError(t, err)
		log.Info("entry", zap.Int("run", i))
		cleanup()
	}

	records := readRecords(t, combinedFile)
	require.Len(t, records, 2)
	assert.EqualValues(t, 0, records[0]["run"])
	assert.EqualValues(t, 1, records[1]["run"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var stdout bytes.Buffer
	log, cleanup, err := New(Config{Level: "nonsense", Stdout: zapcore.AddSync(&stdout)})
	require.NoError(t, err)
	defer cleanup()

	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_UnwritableFile(t *testing.T) {
	_, _, err := New(Config{
		Level:        "info",
		CombinedFile: filepath.Join(t.TempDir(), "missing", "combined.log"),
		Stdout:       zapcore.AddSync(&bytes.Buffer{}),
	})
	assert.Error(t, err)
}

func TestWithRequestID(t *testing.T) {
	log := zap.NewNop()
	assert.Same(t, log, WithRequestID(log, ""))
	assert.NotSame(t, log, WithRequestID(log, "abc"))
}
