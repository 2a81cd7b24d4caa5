package domain

// DefaultBoardBackground is applied when a board is created without a background
const DefaultBoardBackground = "#0079bf"

// Board is the root of the ownership hierarchy
type Board struct {
	BaseModel
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	Background  string  `gorm:"type:varchar(255);not null;default:'#0079bf'" json:"background"`
	Lists       []List  `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"lists,omitempty"`
	Labels      []Label `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"labels,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}
