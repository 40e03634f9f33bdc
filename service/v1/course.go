package service

import (
	"context"
	"strconv"
	"time"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hallowlabs/academy-backend/errcode"
	"github.com/hallowlabs/academy-backend/logger/xzap"
	"github.com/hallowlabs/academy-backend/service/svc"
	"github.com/hallowlabs/academy-backend/stores/gdb/course"
	types "github.com/hallowlabs/academy-backend/types/v1"
)

// CreateCourse persists the whole course tree in one transaction; module and
// lesson indexes come from request order and are contiguous per parent.
func CreateCourse(ctx context.Context, s *svc.ServerCtx, req types.CreateCourseRequest) (*course.Course, error) {
	modules := make([]course.Module, 0, len(req.Modules))
	for i, m := range req.Modules {
		lessons := make([]course.Lesson, 0, len(m.Lessons))
		for j, l := range m.Lessons {
			lessons = append(lessons, course.Lesson{
				Title:    l.Title,
				Index:    j,
				VideoURL: l.VideoURL,
				Duration: l.Duration,
				Content:  l.Content,
			})
		}
		modules = append(modules, course.Module{
			Title:   m.Title,
			Index:   i,
			Lessons: lessons,
		})
	}

	record := &course.Course{
		Slug:         slug.Make(req.Title) + "-" + strconv.FormatInt(time.Now().Unix(), 10),
		Title:        req.Title,
		Description:  req.Description,
		CoverImage:   req.CoverImage,
		CategoryID:   req.CategoryID,
		LevelID:      req.LevelID,
		InstructorID: req.InstructorID,
		Modules:      modules,
	}
	if err := s.Dao.CreateCourseTree(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed on create course tree")
	}

	// cache the derived badge token id; a failed write here is recomputed on
	// the next enrollment check
	tokenID := CourseTokenID(record.ID)
	if err := s.Dao.SetCourseBadgeTokenID(ctx, record.ID, tokenID); err != nil {
		xzap.WithContext(ctx).Warn("badge token id cache write failed",
			zap.Uint("course_id", record.ID), zap.Error(err))
	} else {
		record.BadgeTokenID = &tokenID
	}
	return record, nil
}

func GetCourses(ctx context.Context, s *svc.ServerCtx, page, pageSize int) (*types.CourseListResp, error) {
	records, total, err := s.Dao.GetCoursesByPage(ctx, page, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed on list courses")
	}
	return &types.CourseListResp{Result: records, Total: total}, nil
}

func GetCourseBySlug(ctx context.Context, s *svc.ServerCtx, courseSlug string) (*types.CourseDetailResp, error) {
	record, err := s.Dao.GetCourseBySlug(ctx, courseSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.NewNotFoundErr("course not found")
		}
		return nil, errors.Wrap(err, "failed on get course")
	}

	enrolled, err := s.Dao.CountEnrollments(ctx, record.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed on count enrollments")
	}
	return &types.CourseDetailResp{Course: *record, EnrolledCount: enrolled}, nil
}

func GetCategories(ctx context.Context, s *svc.ServerCtx) ([]course.Category, error) {
	return s.Dao.ListCategories(ctx)
}

func CreateCategory(ctx context.Context, s *svc.ServerCtx, req types.CreateCategoryRequest) (*course.Category, error) {
	record := &course.Category{Name: req.Name}
	if err := s.Dao.CreateCategory(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed on create category")
	}
	return record, nil
}

func GetLevels(ctx context.Context, s *svc.ServerCtx) ([]course.Level, error) {
	return s.Dao.ListLevels(ctx)
}

func CreateLevel(ctx context.Context, s *svc.ServerCtx, req types.CreateLevelRequest) (*course.Level, error) {
	record := &course.Level{Name: req.Name, Rank: req.Rank}
	if err := s.Dao.CreateLevel(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed on create level")
	}
	return record, nil
}

func GetInstructors(ctx context.Context, s *svc.ServerCtx) ([]course.Instructor, error) {
	return s.Dao.ListInstructors(ctx)
}

func CreateInstructor(ctx context.Context, s *svc.ServerCtx, req types.CreateInstructorRequest) (*course.Instructor, error) {
	record := &course.Instructor{Name: req.Name, Bio: req.Bio, AvatarURL: req.AvatarURL}
	if err := s.Dao.CreateInstructor(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed on create instructor")
	}
	return record, nil
}
