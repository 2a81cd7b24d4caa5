package metrics

// IncrementBoardCreated increments board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementCardCreated increments card creation counter
func (m *Metrics) IncrementCardCreated() {
	m.safeExecute("IncrementCardCreated", func() {
		m.CardCreatedTotal.Inc()
	})
}

// IncrementAttachmentUploaded increments uploaded attachment counter
func (m *Metrics) IncrementAttachmentUploaded() {
	m.safeExecute("IncrementAttachmentUploaded", func() {
		m.AttachmentUploadedTotal.Inc()
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetCardsTotal sets total cards gauge
func (m *Metrics) SetCardsTotal(count int64) {
	m.safeExecute("SetCardsTotal", func() {
		m.CardsTotal.Set(float64(count))
	})
}
