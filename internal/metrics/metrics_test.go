package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	counter := operationsTotal.WithLabelValues("product", "insert", ResultOK)
	before := testutil.ToFloat64(counter)

	ObserveOperation("product", "insert", ResultOK, time.Now())
	ObserveOperation("product", "insert", ResultOK, time.Now())

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestEventPublishFailed(t *testing.T) {
	before := testutil.ToFloat64(eventsPublishFailures)
	EventPublishFailed()
	assert.Equal(t, before+1, testutil.ToFloat64(eventsPublishFailures))
}
