package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCreationCounters(t *testing.T) {
	m := getTestMetrics()

	m.IncrementBoardCreated()
	m.IncrementCardCreated()
	m.IncrementCardCreated()
	m.IncrementAttachmentUploaded()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.BoardCreatedTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CardCreatedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AttachmentUploadedTotal))
}

func TestSetTotals(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero", 0},
		{"one", 1},
		{"many", 42},
		{"large number", 5000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetBoardsTotal(tt.count)
			m.SetCardsTotal(tt.count * 2)
			assert.Equal(t, float64(tt.count), testutil.ToFloat64(m.BoardsTotal))
			assert.Equal(t, float64(tt.count*2), testutil.ToFloat64(m.CardsTotal))
		})
	}
}
