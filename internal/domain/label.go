package domain

import "time"

// Label is a board-scoped tag that can be attached to cards
type Label struct {
	BaseModel
	BoardID string `gorm:"type:varchar(36);not null;index:idx_labels_board_id" json:"board_id"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Color   string `gorm:"type:varchar(50);not null" json:"color"`
}

// TableName specifies the table name for Label
func (Label) TableName() string {
	return "labels"
}

// CardLabel joins a card and a label. The pair is the primary key.
type CardLabel struct {
	CardID    string    `gorm:"type:varchar(36);primaryKey" json:"card_id"`
	LabelID   string    `gorm:"type:varchar(36);primaryKey;index:idx_card_labels_label_id" json:"label_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	Label     *Label    `gorm:"foreignKey:LabelID;constraint:OnDelete:CASCADE" json:"label,omitempty"`
}

// TableName specifies the table name for CardLabel
func (CardLabel) TableName() string {
	return "card_labels"
}
