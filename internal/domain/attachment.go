package domain

// Attachment is file metadata for an upload stored by the file storage backend
type Attachment struct {
	BaseModel
	CardID string `gorm:"type:varchar(36);not null;index:idx_attachments_card_id" json:"card_id"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	URL    string `gorm:"type:text;not null;index:idx_attachments_url" json:"url"`
	Type   string `gorm:"type:varchar(100);not null" json:"type"`
	Size   int64  `gorm:"not null" json:"size"`
}

// TableName specifies the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
