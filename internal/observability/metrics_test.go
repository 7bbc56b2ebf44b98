package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/users", "200"))

	RecordHTTPRequest("GET", "/api/users", "200", 0.01)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/users", "200")))
}

func TestDomainCounters(t *testing.T) {
	users := testutil.ToFloat64(usersCreated)
	exercises := testutil.ToFloat64(exercisesRecorded)

	RecordUserCreated()
	RecordExerciseRecorded()
	RecordExerciseRecorded()

	assert.Equal(t, users+1, testutil.ToFloat64(usersCreated))
	assert.Equal(t, exercises+2, testutil.ToFloat64(exercisesRecorded))
}
