package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"student-management-api/config"
	"student-management-api/model"
	"student-management-api/store"
)

type StudentRepository interface {
	Insert(ctx context.Context, student *model.Student) error
	FindAll(ctx context.Context) ([]model.Student, error)
	FindByID(ctx context.Context, id string) (*model.Student, error)
	UpdateByID(ctx context.Context, id string, student model.Student) (*model.Student, error)
	DeleteByID(ctx context.Context, id string) (*model.Student, error)
	ListWithCourses(ctx context.Context) ([]model.StudentWithCourses, error)
}

type CourseRepository interface {
	Insert(ctx context.Context, course *model.Course) error
	FindAll(ctx context.Context) ([]model.Course, error)
	FindByID(ctx context.Context, id string) (*model.Course, error)
	DeleteByID(ctx context.Context, id string) (*model.Course, error)
	Search(ctx context.Context, text string) ([]model.Course, error)
}

type TaskRepository interface {
	Insert(ctx context.Context, task *model.Task) error
	FindAll(ctx context.Context) ([]model.Task, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	DeleteByID(ctx context.Context, id string) (*model.Task, error)
}

type UserRepository interface {
	Insert(ctx context.Context, user *model.User) error
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	DeleteByID(ctx context.Context, id string) (*model.User, error)
}

// Repositories groups the store operations the services need.
type Repositories struct {
	Students StudentRepository
	Courses  CourseRepository
	Tasks    TaskRepository
	Users    UserRepository
}

// FromStore adapts a connected store.
func FromStore(s *store.Store) Repositories {
	return Repositories{
		Students: s.Students,
		Courses:  s.Courses,
		Tasks:    s.Tasks,
		Users:    s.Users,
	}
}

// Service aggregates the per-kind services.
type Service struct {
	Student StudentService
	Course  CourseService
	Task    TaskService
	User    UserService
}

// Options tune behaviour the config does not cover.
type Options struct {
	// Now stamps createdAt; defaults to time.Now.
	Now func() time.Time
}

func NewService(cfg *config.Config, repos Repositories, logger *zap.Logger, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	strict := cfg.API.StrictNotFound

	return &Service{
		Student: NewStudentService(repos.Students, strict, now, logger),
		Course:  NewCourseService(repos.Courses, strict, logger),
		Task:    NewTaskService(repos.Tasks, strict, now, logger),
		User:    NewUserService(repos.Users, strict, cfg.Users.HashPasswords, now, logger),
	}
}

// notFoundPolicy decides whether a missing id on update or delete is an
// error. In lenient mode it is reported as success with no record.
type notFoundPolicy struct {
	strict bool
}

func (p notFoundPolicy) filter(err error) error {
	if err != nil && !p.strict && errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

func stamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Millisecond)
}
