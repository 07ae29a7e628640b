package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"student-management-api/model"
)

type StudentService interface {
	Create(ctx context.Context, req *model.StudentRequest) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	Get(ctx context.Context, id string) (*model.Student, error)
	// Update returns (nil, nil) for a missing id unless strict not-found is on.
	Update(ctx context.Context, id string, req *model.StudentRequest) (*model.Student, error)
	Delete(ctx context.Context, id string) error
	ListWithCourses(ctx context.Context) ([]model.StudentWithCourses, error)
}

type studentService struct {
	repo     StudentRepository
	notFound notFoundPolicy
	now      func() time.Time
	logger   *zap.Logger
}

func NewStudentService(repo StudentRepository, strictNotFound bool, now func() time.Time, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, notFound: notFoundPolicy{strict: strictNotFound}, now: now, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *model.StudentRequest) (*model.Student, error) {
	if err := model.Validate("Student", req); err != nil {
		return nil, err
	}

	student := req.Student()
	student.CreatedAt = stamp(s.now)
	if err := s.repo.Insert(ctx, &student); err != nil {
		return nil, err
	}

	s.logger.Debug("student created", zap.String("id", student.ID.Hex()))
	return &student, nil
}

func (s *studentService) List(ctx context.Context) ([]model.Student, error) {
	return s.repo.FindAll(ctx)
}

func (s *studentService) Get(ctx context.Context, id string) (*model.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *studentService) Update(ctx context.Context, id string, req *model.StudentRequest) (*model.Student, error) {
	if err := model.Validate("Student", req); err != nil {
		return nil, err
	}

	changes := req.Student()
	if req.EnrolledCourses == nil {
		changes.EnrolledCourses = nil
	}
	updated, err := s.repo.UpdateByID(ctx, id, changes)
	if err != nil {
		return nil, s.notFound.filter(err)
	}
	return updated, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.DeleteByID(ctx, id)
	return s.notFound.filter(err)
}

func (s *studentService) ListWithCourses(ctx context.Context) ([]model.StudentWithCourses, error) {
	return s.repo.ListWithCourses(ctx)
}
