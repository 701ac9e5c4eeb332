package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordOperation(t *testing.T) {
	before := testutil.ToFloat64(OperationsCounter("add", OutcomeSuccess))

	RecordOperation("add", OutcomeSuccess, time.Microsecond)
	RecordOperation("add", OutcomeSuccess, time.Microsecond)

	assert.Equal(t, before+2, testutil.ToFloat64(OperationsCounter("add", OutcomeSuccess)))
}

func TestRecordNonFinite(t *testing.T) {
	before := testutil.ToFloat64(nonFiniteResults.WithLabelValues("power"))

	RecordNonFinite("power")

	assert.Equal(t, before+1, testutil.ToFloat64(nonFiniteResults.WithLabelValues("power")))
}
