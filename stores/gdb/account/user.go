package account

import "gorm.io/gorm"

// User is keyed by wallet address and created on first interaction
// (submission, vote, contest creation). Rows are never deleted.
type User struct {
	gorm.Model
	Address     string `gorm:"uniqueIndex;size:100;not null" json:"address"`
	DisplayName string `gorm:"size:100" json:"display_name"`
	Email       string `gorm:"size:200" json:"email"`
	AvatarURL   string `gorm:"size:500" json:"avatar_url"`
}

func UserTableName() string {
	return "users"
}
