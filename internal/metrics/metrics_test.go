package metrics

import (
	"regexp"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}

func TestMetricsInitialization(t *testing.T) {
	m := getTestMetrics()

	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.DBConnectionsOpen)
	assert.NotNil(t, m.DBConnectionsInUse)
	assert.NotNil(t, m.DBConnectionsIdle)
	assert.NotNil(t, m.DBConnectionsMax)
	assert.NotNil(t, m.DBConnectionWaitTotal)
	assert.NotNil(t, m.DBConnectionWaitDuration)
	assert.NotNil(t, m.DBQueryDuration)
	assert.NotNil(t, m.DBQueryErrors)
	assert.NotNil(t, m.StorageOperationDuration)
	assert.NotNil(t, m.StorageOperationsTotal)
	assert.NotNil(t, m.StorageErrors)
	assert.NotNil(t, m.BoardsTotal)
	assert.NotNil(t, m.CardsTotal)
	assert.NotNil(t, m.BoardCreatedTotal)
	assert.NotNil(t, m.CardCreatedTotal)
	assert.NotNil(t, m.AttachmentUploadedTotal)
}

func TestMetricNamingAndHelp(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, nil)

	// vectors only show up once a label set has been observed
	m.RecordHTTPRequest("GET", "/api/boards", 200, 0)
	m.RecordDBQuery("select", "boards", 0, assert.AnError)
	m.RecordStorageOperation("local", "save", 0, assert.AnError)

	families, err := registry.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	snakeCase := regexp.MustCompile(`^taskboard_[a-z0-9]+(_[a-z0-9]+)*$`)
	for _, mf := range families {
		assert.Regexp(t, snakeCase, mf.GetName())
		assert.NotEmpty(t, mf.GetHelp(), "metric %s has no help text", mf.GetName())
	}
}

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{304, "3xx"},
		{404, "4xx"},
		{409, "4xx"},
		{500, "5xx"},
		{100, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, categorizeStatus(tt.code), "code %d", tt.code)
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	assert.True(t, ShouldSkipEndpoint("/metrics"))
	assert.True(t, ShouldSkipEndpoint("/health"))
	assert.True(t, ShouldSkipEndpoint("/ready"))
	assert.True(t, ShouldSkipEndpoint("/uploads/1700000000000-abc.png"))
	assert.True(t, ShouldSkipEndpoint("/swagger/index.html"))
	assert.False(t, ShouldSkipEndpoint("/api/boards"))
}
