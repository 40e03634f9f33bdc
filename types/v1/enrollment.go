package types

import "github.com/hallowlabs/academy-backend/stores/gdb/course"

type VerifyEnrollmentRequest struct {
	Address  string `json:"address" binding:"required,wallet"`
	CourseID uint   `json:"course_id" binding:"required"`
}

type EnrollRequest struct {
	Address  string `json:"address" binding:"required,wallet"`
	CourseID uint   `json:"course_id" binding:"required"`
}

type EnrollmentStatusResp struct {
	CourseID uint  `json:"course_id"`
	TokenID  int64 `json:"token_id"`
	Enrolled bool  `json:"enrolled"`
	// Cached marks whether the answer came with a local row already present.
	Cached bool `json:"cached"`
}

type EnrollResp struct {
	CourseID uint   `json:"course_id"`
	TokenID  int64  `json:"token_id"`
	TxHash   string `json:"tx_hash"`
}

type EnrollmentListResp struct {
	Result []course.CourseEnrollment `json:"result"`
}
