package domain

import "time"

// Card is an ordered item within a list
type Card struct {
	BaseModel
	ListID      string       `gorm:"type:varchar(36);not null;index:idx_cards_list_position,priority:1" json:"list_id"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description *string      `gorm:"type:text" json:"description"`
	Position    int          `gorm:"not null;default:0;index:idx_cards_list_position,priority:2" json:"position"`
	DueDate     *time.Time   `gorm:"index:idx_cards_due_date" json:"due_date"`
	CoverImage  *string      `gorm:"type:text" json:"cover_image"`
	Labels      []CardLabel  `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"labels,omitempty"`
	Members     []CardMember `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Checklists  []Checklist  `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"checklists,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
	Comments    []Comment    `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "cards"
}
