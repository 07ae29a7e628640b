package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"student-management-api/model"
)

type CourseService interface {
	Create(ctx context.Context, req *model.CourseRequest) (*model.Course, error)
	// List returns every course, or only text matches when query is not blank.
	List(ctx context.Context, query string) ([]model.Course, error)
	Get(ctx context.Context, id string) (*model.Course, error)
	Delete(ctx context.Context, id string) error
}

type courseService struct {
	repo     CourseRepository
	notFound notFoundPolicy
	logger   *zap.Logger
}

func NewCourseService(repo CourseRepository, strictNotFound bool, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, notFound: notFoundPolicy{strict: strictNotFound}, logger: logger}
}

func (s *courseService) Create(ctx context.Context, req *model.CourseRequest) (*model.Course, error) {
	if err := model.Validate("Course", req); err != nil {
		return nil, err
	}

	course := req.Course()
	if err := s.repo.Insert(ctx, &course); err != nil {
		return nil, err
	}

	s.logger.Debug("course created", zap.String("id", course.ID.Hex()))
	return &course, nil
}

func (s *courseService) List(ctx context.Context, query string) ([]model.Course, error) {
	if q := strings.TrimSpace(query); q != "" {
		return s.repo.Search(ctx, q)
	}
	return s.repo.FindAll(ctx)
}

func (s *courseService) Get(ctx context.Context, id string) (*model.Course, error) {
	return s.repo.FindByID(ctx, id)
}

// Delete leaves student enrolments and task assignments that point at the
// course as they are.
func (s *courseService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.DeleteByID(ctx, id)
	return s.notFound.filter(err)
}
