package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseTokenID_Deterministic(t *testing.T) {
	for _, id := range []uint{4, 57, 1024, 999999} {
		first := CourseTokenID(id)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, CourseTokenID(id))
		}
	}
}

func TestCourseTokenID_LegacyCoursesStayPinned(t *testing.T) {
	assert.Equal(t, int64(101), CourseTokenID(1))
	assert.Equal(t, int64(102), CourseTokenID(2))
	assert.Equal(t, int64(103), CourseTokenID(3))
}

func TestCourseTokenID_BoundedRange(t *testing.T) {
	for id := uint(4); id < 5000; id++ {
		tokenID := CourseTokenID(id)
		assert.GreaterOrEqual(t, tokenID, int64(1))
		assert.Less(t, tokenID, int64(tokenIDRange))
	}
}

func TestCourseTokenID_DiffersAcrossCourses(t *testing.T) {
	assert.NotEqual(t, CourseTokenID(4), CourseTokenID(5))
}
