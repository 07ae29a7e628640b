package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"student-management-api/model"
)

type UserService interface {
	Create(ctx context.Context, req *model.UserRequest) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo          UserRepository
	notFound      notFoundPolicy
	hashPasswords bool
	now           func() time.Time
	logger        *zap.Logger
}

func NewUserService(repo UserRepository, strictNotFound bool, hashPasswords bool, now func() time.Time, logger *zap.Logger) UserService {
	if !hashPasswords {
		logger.Warn("user passwords will be stored in plaintext")
	}
	return &userService{repo: repo, notFound: notFoundPolicy{strict: strictNotFound}, hashPasswords: hashPasswords, now: now, logger: logger}
}

func (s *userService) Create(ctx context.Context, req *model.UserRequest) (*model.User, error) {
	if err := model.Validate("User", req); err != nil {
		return nil, err
	}

	user := req.User()
	if s.hashPasswords && user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.Password = string(hashed)
	}

	user.CreatedAt = stamp(s.now)
	if err := s.repo.Insert(ctx, &user); err != nil {
		return nil, err
	}

	s.logger.Debug("user created", zap.String("id", user.ID.Hex()), zap.String("role", user.Role))
	return &user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.DeleteByID(ctx, id)
	return s.notFound.filter(err)
}
