package domain

// Checklist is an ordered group of items on a card
type Checklist struct {
	BaseModel
	CardID   string          `gorm:"type:varchar(36);not null;index:idx_checklists_card_position,priority:1" json:"card_id"`
	Title    string          `gorm:"type:varchar(255);not null" json:"title"`
	Position int             `gorm:"not null;default:0;index:idx_checklists_card_position,priority:2" json:"position"`
	Items    []ChecklistItem `gorm:"foreignKey:ChecklistID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// TableName specifies the table name for Checklist
func (Checklist) TableName() string {
	return "checklists"
}

// ChecklistItem is a single checkable entry of a checklist
type ChecklistItem struct {
	BaseModel
	ChecklistID string `gorm:"type:varchar(36);not null;index:idx_checklist_items_checklist_position,priority:1" json:"checklist_id"`
	Text        string `gorm:"type:text;not null" json:"text"`
	IsCompleted bool   `gorm:"not null;default:false" json:"is_completed"`
	Position    int    `gorm:"not null;default:0;index:idx_checklist_items_checklist_position,priority:2" json:"position"`
}

// TableName specifies the table name for ChecklistItem
func (ChecklistItem) TableName() string {
	return "checklist_items"
}
