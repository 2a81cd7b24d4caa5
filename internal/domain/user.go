package domain

// User is a person that can be assigned to cards and write comments
type User struct {
	BaseModel
	Name   string  `gorm:"type:varchar(255);not null" json:"name"`
	Email  string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	Avatar *string `gorm:"type:text" json:"avatar"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
