package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordInsightsComputed(t *testing.T) {
	before := testutil.ToFloat64(insightsComputed)
	RecordInsightsComputed(12, 3*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(insightsComputed))
}

func TestRecordKeySetFetch(t *testing.T) {
	ok := testutil.ToFloat64(keySetFetches.WithLabelValues("success"))
	failed := testutil.ToFloat64(keySetFetches.WithLabelValues("error"))

	RecordKeySetFetch(nil)
	RecordKeySetFetch(errors.New("boom"))
	RecordKeySetFetch(errors.New("boom"))

	assert.Equal(t, ok+1, testutil.ToFloat64(keySetFetches.WithLabelValues("success")))
	assert.Equal(t, failed+2, testutil.ToFloat64(keySetFetches.WithLabelValues("error")))
}

func TestRecordWorkoutLoggedAndExport(t *testing.T) {
	logged := testutil.ToFloat64(workoutsLogged)
	exported := testutil.ToFloat64(exportsCreated.WithLabelValues("success"))

	RecordWorkoutLogged()
	RecordExport(nil)

	assert.Equal(t, logged+1, testutil.ToFloat64(workoutsLogged))
	assert.Equal(t, exported+1, testutil.ToFloat64(exportsCreated.WithLabelValues("success")))
}
