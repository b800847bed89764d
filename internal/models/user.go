package models

// User represents the user model in the database
type User struct {
	Base
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Motos     []Moto `gorm:"foreignKey:UserID" json:"motos,omitempty"`
}
