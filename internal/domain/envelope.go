package domain

import (
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that encodes NaN and ±Inf as JSON null
type Number float64

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(FormatNumber(f)), nil
}

// FormatNumber renders f the way the service prints numbers in logs and
// JSON: plain decimal notation, switching to exponent notation only for
// magnitudes at or above 1e21 or below 1e-6.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent drops leading zeros from the exponent, "1e-07" -> "1e-7"
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}

// Envelope is the JSON body returned by every calculator endpoint.
// Exactly one of Data or Msg is set.
type Envelope struct {
	StatusCode int     `json:"statuscode"`
	Data       *Number `json:"data,omitempty"`
	Msg        string  `json:"msg,omitempty"`
}

// SuccessEnvelope wraps a result
func SuccessEnvelope(statusCode int, result float64) Envelope {
	n := Number(result)
	return Envelope{StatusCode: statusCode, Data: &n}
}

// FailureEnvelope wraps an error message
func FailureEnvelope(statusCode int, msg string) Envelope {
	return Envelope{StatusCode: statusCode, Msg: msg}
}
