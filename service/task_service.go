package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"student-management-api/model"
)

type TaskService interface {
	Create(ctx context.Context, req *model.TaskRequest) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Get(ctx context.Context, id string) (*model.Task, error)
	Delete(ctx context.Context, id string) error
}

type taskService struct {
	repo     TaskRepository
	notFound notFoundPolicy
	now      func() time.Time
	logger   *zap.Logger
}

func NewTaskService(repo TaskRepository, strictNotFound bool, now func() time.Time, logger *zap.Logger) TaskService {
	return &taskService{repo: repo, notFound: notFoundPolicy{strict: strictNotFound}, now: now, logger: logger}
}

func (s *taskService) Create(ctx context.Context, req *model.TaskRequest) (*model.Task, error) {
	if err := model.Validate("Task", req); err != nil {
		return nil, err
	}
	task, err := req.Task()
	if err != nil {
		return nil, err
	}

	task.CreatedAt = stamp(s.now)
	if err := s.repo.Insert(ctx, &task); err != nil {
		return nil, err
	}

	s.logger.Debug("task created", zap.String("id", task.ID.Hex()))
	return &task, nil
}

func (s *taskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.FindAll(ctx)
}

func (s *taskService) Get(ctx context.Context, id string) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.DeleteByID(ctx, id)
	return s.notFound.filter(err)
}
