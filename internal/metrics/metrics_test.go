package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordOutcome(t *testing.T) {
	before := testutil.ToFloat64(MissionsTotal.WithLabelValues(OutcomeObstacle))
	RecordOutcome(OutcomeObstacle)
	assert.Equal(t, before+1, testutil.ToFloat64(MissionsTotal.WithLabelValues(OutcomeObstacle)))
}

func TestRecordEffect(t *testing.T) {
	before := testutil.ToFloat64(EffectsTotal.WithLabelValues("ask_commands"))
	RecordEffect("ask_commands")
	RecordEffect("ask_commands")
	assert.Equal(t, before+2, testutil.ToFloat64(EffectsTotal.WithLabelValues("ask_commands")))
}
