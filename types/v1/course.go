package types

import "github.com/hallowlabs/academy-backend/stores/gdb/course"

// LessonInput and ModuleInput describe the tree in request order; explicit
// indexes are assigned contiguously by the service.
type LessonInput struct {
	Title    string `json:"title" binding:"required,max=200"`
	VideoURL string `json:"video_url" binding:"max=500"`
	Duration int    `json:"duration" binding:"gte=0"`
	Content  string `json:"content"`
}

type ModuleInput struct {
	Title   string        `json:"title" binding:"required,max=200"`
	Lessons []LessonInput `json:"lessons" binding:"dive"`
}

type CreateCourseRequest struct {
	Title        string        `json:"title" binding:"required,max=200"`
	Description  string        `json:"description" binding:"required"`
	CoverImage   string        `json:"cover_image" binding:"max=500"`
	CategoryID   uint          `json:"category_id" binding:"required"`
	LevelID      uint          `json:"level_id" binding:"required"`
	InstructorID uint          `json:"instructor_id" binding:"required"`
	Modules      []ModuleInput `json:"modules" binding:"dive"`
}

type CourseListResp struct {
	Result []course.Course `json:"result"`
	Total  int64           `json:"total"`
}

// CourseDetailResp inlines the course tree plus the confirmed enrollment
// count from the cache.
type CourseDetailResp struct {
	course.Course
	EnrolledCount int64 `json:"enrolled_count"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CreateLevelRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Rank int    `json:"rank" binding:"gte=0"`
}

type CreateInstructorRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url" binding:"max=500"`
}
