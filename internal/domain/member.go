package domain

import "time"

// CardMember joins a card and a user. The pair is the primary key.
type CardMember struct {
	CardID    string    `gorm:"type:varchar(36);primaryKey" json:"card_id"`
	UserID    string    `gorm:"type:varchar(36);primaryKey;index:idx_card_members_user_id" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for CardMember
func (CardMember) TableName() string {
	return "card_members"
}
