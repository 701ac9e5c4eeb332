// Package testutil provides shared test utilities for the calculator service.
package testutil

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Envelope mirrors the response body with data kept raw so tests can tell a
// JSON null apart from a number.
type Envelope struct {
	StatusCode int             `json:"statuscode"`
	Data       json.RawMessage `json:"data"`
	Msg        string          `json:"msg"`
}

// HasNullData reports whether data was present and null
func (e Envelope) HasNullData() bool {
	return string(e.Data) == "null"
}

// Number decodes data as a float
func (e Envelope) Number(t *testing.T) float64 {
	t.Helper()
	var f float64
	require.NoError(t, json.Unmarshal(e.Data, &f), "data is not a number: %s", e.Data)
	return f
}

// DecodeEnvelope reads a calculator envelope from resp
func DecodeEnvelope(t *testing.T, resp *http.Response) Envelope {
	t.Helper()
	defer resp.Body.Close()

	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// NewObservedLogger returns a logger recording entries at or above level
func NewObservedLogger(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}
