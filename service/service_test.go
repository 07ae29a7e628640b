package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"student-management-api/config"
	"student-management-api/model"
	"student-management-api/store"
	"student-management-api/testutil"
)

var fixedNow = time.Date(2024, 9, 1, 8, 30, 0, 0, time.UTC)

func setupService(t *testing.T, mutate func(*config.Config)) (*Service, *testutil.MemStore) {
	t.Helper()

	cfg := &config.Config{
		Users: config.UsersConfig{HashPasswords: true},
	}
	if mutate != nil {
		mutate(cfg)
	}
	mem := testutil.NewMemStore()
	repos := Repositories{
		Students: mem.Students(),
		Courses:  mem.Courses(),
		Tasks:    mem.Tasks(),
		Users:    mem.Users(),
	}
	svc := NewService(cfg, repos, zap.NewNop(), Options{Now: func() time.Time { return fixedNow }})
	return svc, mem
}

func floatPtr(v float64) *float64 { return &v }

func studentReq(name, email string, age float64, courses ...model.Ref) *model.StudentRequest {
	return &model.StudentRequest{Name: name, Email: email, Age: floatPtr(age), EnrolledCourses: courses}
}

// ── Students ──

func TestStudentService_Create_Success(t *testing.T) {
	svc, _ := setupService(t, nil)

	s, err := svc.Student.Create(context.Background(), studentReq("Ann", "ann@example.com", 20))
	require.NoError(t, err)
	require.False(t, s.ID.IsZero())
	require.Equal(t, "Ann", s.Name)
	require.Equal(t, "ann@example.com", s.Email)
	require.Equal(t, float64(20), s.Age)
	require.Empty(t, s.EnrolledCourses)
	require.Equal(t, fixedNow, s.CreatedAt)
}

func TestStudentService_Create_ValidationFailsBeforeStore(t *testing.T) {
	svc, mem := setupService(t, nil)

	_, err := svc.Student.Create(context.Background(), &model.StudentRequest{Email: "x@example.com"})
	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve))

	all, err := mem.Students().FindAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestStudentService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	first, err := svc.Student.Create(ctx, studentReq("Ann", "ann@example.com", 20))
	require.NoError(t, err)

	_, err = svc.Student.Create(ctx, studentReq("Other", "ann@example.com", 30))
	require.ErrorIs(t, err, store.ErrDuplicateKey)

	got, err := svc.Student.Get(ctx, first.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "Ann", got.Name)
	require.Equal(t, float64(20), got.Age)
}

func TestStudentService_Update(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	s, err := svc.Student.Create(ctx, studentReq("Ann", "ann@example.com", 20))
	require.NoError(t, err)

	course := model.NewRef(primitive.NewObjectID())
	updated, err := svc.Student.Update(ctx, s.ID.Hex(), studentReq("Annie", "annie@example.com", 21, course))
	require.NoError(t, err)
	require.Equal(t, "Annie", updated.Name)
	require.Equal(t, "annie@example.com", updated.Email)
	require.Equal(t, float64(21), updated.Age)
	require.Equal(t, []model.Ref{course}, updated.EnrolledCourses)
	require.Equal(t, s.CreatedAt, updated.CreatedAt)
}

func TestStudentService_Update_MissingIDLenient(t *testing.T) {
	svc, _ := setupService(t, nil)

	updated, err := svc.Student.Update(context.Background(), primitive.NewObjectID().Hex(), studentReq("Ann", "a@b.c", 1))
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestStudentService_Update_MissingIDStrict(t *testing.T) {
	svc, _ := setupService(t, func(c *config.Config) { c.API.StrictNotFound = true })

	_, err := svc.Student.Update(context.Background(), primitive.NewObjectID().Hex(), studentReq("Ann", "a@b.c", 1))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestStudentService_Update_InvalidID(t *testing.T) {
	svc, _ := setupService(t, nil)

	_, err := svc.Student.Update(context.Background(), "not-an-id", studentReq("Ann", "a@b.c", 1))
	require.ErrorIs(t, err, store.ErrInvalidID)
}

func TestStudentService_Delete(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	s, err := svc.Student.Create(ctx, studentReq("Ann", "ann@example.com", 20))
	require.NoError(t, err)

	require.NoError(t, svc.Student.Delete(ctx, s.ID.Hex()))
	// A second delete finds nothing and still succeeds in lenient mode.
	require.NoError(t, svc.Student.Delete(ctx, s.ID.Hex()))
	require.ErrorIs(t, svc.Student.Delete(ctx, "zzz"), store.ErrInvalidID)
}

func TestStudentService_ListWithCourses_OmitsDeletedCourses(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	keep, err := svc.Course.Create(ctx, &model.CourseRequest{CourseName: "Go", Instructor: "Rob", Credits: floatPtr(3)})
	require.NoError(t, err)
	drop, err := svc.Course.Create(ctx, &model.CourseRequest{CourseName: "C", Instructor: "Dennis", Credits: floatPtr(4)})
	require.NoError(t, err)

	s, err := svc.Student.Create(ctx, studentReq("Ann", "ann@example.com", 20, model.NewRef(keep.ID), model.NewRef(drop.ID)))
	require.NoError(t, err)
	_, err = svc.Student.Create(ctx, studentReq("Bob", "bob@example.com", 22))
	require.NoError(t, err)

	require.NoError(t, svc.Course.Delete(ctx, drop.ID.Hex()))

	// The dangling reference persists on the student.
	got, err := svc.Student.Get(ctx, s.ID.Hex())
	require.NoError(t, err)
	require.Len(t, got.EnrolledCourses, 2)

	joined, err := svc.Student.ListWithCourses(ctx)
	require.NoError(t, err)
	require.Len(t, joined, 2)
	for _, j := range joined {
		if j.ID == s.ID {
			require.Equal(t, []model.Course{*keep}, j.CourseDetails)
		} else {
			require.Empty(t, j.CourseDetails)
		}
	}
}

// ── Courses ──

func TestCourseService_CreateAndList(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	c, err := svc.Course.Create(ctx, &model.CourseRequest{CourseName: "Operating Systems", Instructor: "Tanenbaum", Credits: floatPtr(5)})
	require.NoError(t, err)
	_, err = svc.Course.Create(ctx, &model.CourseRequest{CourseName: "Compilers", Instructor: "Aho", Credits: floatPtr(4)})
	require.NoError(t, err)

	all, err := svc.Course.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, *c, all[0])

	found, err := svc.Course.List(ctx, "  systems ")
	require.NoError(t, err)
	require.Equal(t, []model.Course{*c}, found)
}

func TestCourseService_Create_MissingCredits(t *testing.T) {
	svc, _ := setupService(t, nil)

	_, err := svc.Course.Create(context.Background(), &model.CourseRequest{CourseName: "Go", Instructor: "Rob"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Course validation failed")
	require.Contains(t, err.Error(), "credits")
}

// ── Tasks ──

func TestTaskService_Create(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	due := "2024-10-01T12:00:00Z"
	course := model.NewRef(primitive.NewObjectID())
	task, err := svc.Task.Create(ctx, &model.TaskRequest{Title: "Essay", DueDate: &due, AssignedCourse: &course})
	require.NoError(t, err)
	require.Equal(t, "Essay", task.Title)
	require.Equal(t, time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC), *task.DueDate)
	require.Equal(t, course, *task.AssignedCourse)
	require.Nil(t, task.Student)
	require.Equal(t, fixedNow, task.CreatedAt)

	bad := "soon"
	_, err = svc.Task.Create(ctx, &model.TaskRequest{DueDate: &bad})
	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve))

	all, err := svc.Task.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

// ── Users ──

func TestUserService_Create_HashesPassword(t *testing.T) {
	svc, mem := setupService(t, nil)
	ctx := context.Background()

	u, err := svc.User.Create(ctx, &model.UserRequest{Username: "ann", Password: "hunter2", Role: "student", Email: "ann@example.com"})
	require.NoError(t, err)

	stored, err := mem.Users().FindByID(ctx, u.ID.Hex())
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter2")))
}

func TestUserService_Create_PlaintextMode(t *testing.T) {
	svc, mem := setupService(t, func(c *config.Config) { c.Users.HashPasswords = false })
	ctx := context.Background()

	u, err := svc.User.Create(ctx, &model.UserRequest{Username: "ann", Password: "hunter2"})
	require.NoError(t, err)

	stored, err := mem.Users().FindByID(ctx, u.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "hunter2", stored.Password)
}

func TestUserService_Create_Duplicates(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	_, err := svc.User.Create(ctx, &model.UserRequest{Username: "ann", Email: "ann@example.com"})
	require.NoError(t, err)

	_, err = svc.User.Create(ctx, &model.UserRequest{Username: "ann", Email: "other@example.com"})
	require.ErrorIs(t, err, store.ErrDuplicateKey)

	_, err = svc.User.Create(ctx, &model.UserRequest{Username: "bob", Email: "ann@example.com"})
	require.ErrorIs(t, err, store.ErrDuplicateKey)
}

func TestUserService_Delete_Strict(t *testing.T) {
	svc, _ := setupService(t, func(c *config.Config) { c.API.StrictNotFound = true })

	err := svc.User.Delete(context.Background(), primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestService_StoreFailurePassesThrough(t *testing.T) {
	svc, mem := setupService(t, nil)
	mem.Err = errors.New("server selection timeout")

	_, err := svc.Student.List(context.Background())
	require.EqualError(t, err, "server selection timeout")

	err = svc.Task.Delete(context.Background(), primitive.NewObjectID().Hex())
	require.EqualError(t, err, "server selection timeout")
}
