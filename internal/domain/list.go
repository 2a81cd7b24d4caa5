package domain

// List is an ordered column of cards within a board
type List struct {
	BaseModel
	BoardID  string `gorm:"type:varchar(36);not null;index:idx_lists_board_position,priority:1" json:"board_id"`
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	Position int    `gorm:"not null;default:0;index:idx_lists_board_position,priority:2" json:"position"`
	Cards    []Card `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"cards,omitempty"`
}

// TableName specifies the table name for List
func (List) TableName() string {
	return "lists"
}
