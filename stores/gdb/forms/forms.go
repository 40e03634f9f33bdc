package forms

import "gorm.io/gorm"

// Contact and subscribe tables are optional: some deployments never migrate
// them. Writes go through Dao.TryCreate* and soft-fail when absent.
type ContactMessage struct {
	gorm.Model
	Name    string `gorm:"size:200" json:"name"`
	Email   string `gorm:"size:200;not null" json:"email"`
	Subject string `gorm:"size:200" json:"subject"`
	Message string `gorm:"type:text" json:"message"`
}

func ContactMessageTableName() string {
	return "contact_messages"
}

type Subscriber struct {
	gorm.Model
	Email string `gorm:"uniqueIndex;size:200;not null" json:"email"`
}

func SubscriberTableName() string {
	return "subscribers"
}
