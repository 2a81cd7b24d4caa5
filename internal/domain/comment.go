package domain

// Comment is a user's note on a card
type Comment struct {
	BaseModel
	CardID string `gorm:"type:varchar(36);not null;index:idx_comments_card_id" json:"card_id"`
	UserID string `gorm:"type:varchar(36);not null;index:idx_comments_user_id" json:"user_id"`
	Text   string `gorm:"type:text;not null" json:"text"`
	User   *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
