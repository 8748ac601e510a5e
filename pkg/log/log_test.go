package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_AddsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	SetupTestLogger(&buf)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithField("month", 3).Info("dashboard: visão gerada")

	out := buf.String()
	assert.Contains(t, out, "correlation_id="+id)
	assert.Contains(t, out, "month=3")
	assert.Contains(t, out, "dashboard: visão gerada")
}

func TestConfigure_InvalidLevelFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	assert.Equal(t, logrus.DebugLevel, Configure("debug"))
	assert.Equal(t, logrus.InfoLevel, Configure("barulhento"))
}
