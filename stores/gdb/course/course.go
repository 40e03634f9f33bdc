package course

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Slug         string `gorm:"uniqueIndex;size:200" json:"slug"`
	Title        string `gorm:"size:200;not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	CoverImage   string `gorm:"size:500" json:"cover_image"`
	CategoryID   uint   `gorm:"index" json:"category_id"`
	LevelID      uint   `gorm:"index" json:"level_id"`
	InstructorID uint   `gorm:"index" json:"instructor_id"`

	// BadgeTokenID caches the derived badge token id so read paths don't
	// rehash on every enrollment check.
	BadgeTokenID *int64 `json:"badge_token_id,omitempty"`

	Category   Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Level      Level      `gorm:"foreignKey:LevelID" json:"level,omitempty"`
	Instructor Instructor `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	Modules    []Module   `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"modules,omitempty"`
}

func CourseTableName() string {
	return "courses"
}

// Module and Lesson carry an explicit Index, contiguous per parent, assigned
// by creation order.
type Module struct {
	gorm.Model
	CourseID uint     `gorm:"index;not null" json:"course_id"`
	Title    string   `gorm:"size:200;not null" json:"title"`
	Index    int      `gorm:"not null" json:"index"`
	Lessons  []Lesson `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"lessons,omitempty"`
}

func ModuleTableName() string {
	return "modules"
}

type Lesson struct {
	gorm.Model
	ModuleID uint   `gorm:"index;not null" json:"module_id"`
	Title    string `gorm:"size:200;not null" json:"title"`
	Index    int    `gorm:"not null" json:"index"`
	VideoURL string `gorm:"size:500" json:"video_url"`
	Duration int    `json:"duration"`
	Content  string `gorm:"type:text" json:"content"`
}

func LessonTableName() string {
	return "lessons"
}

type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}

type Level struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Rank int    `json:"rank"`
}

type Instructor struct {
	gorm.Model
	Name      string `gorm:"size:200;not null" json:"name"`
	Bio       string `gorm:"type:text" json:"bio"`
	AvatarURL string `gorm:"size:500" json:"avatar_url"`
}

// CourseEnrollment caches on-chain badge ownership. The badge contract is the
// authoritative source; rows here exist so list pages don't fan out RPC reads.
type CourseEnrollment struct {
	gorm.Model
	CourseID      uint   `gorm:"uniqueIndex:idx_course_wallet;not null" json:"course_id"`
	UserID        uint   `gorm:"index" json:"user_id"`
	WalletAddress string `gorm:"uniqueIndex:idx_course_wallet;size:100;not null" json:"wallet_address"`
	OnChain       bool   `gorm:"default:false" json:"on_chain"`
	TxHash        string `gorm:"size:100" json:"tx_hash"`
}

func CourseEnrollmentTableName() string {
	return "course_enrollments"
}
