// Package testutil holds an in-memory stand-in for the MongoDB store. It
// mirrors the store's error kinds, unique indexes and join semantics so that
// services and controllers can be tested without a database.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"student-management-api/model"
	"student-management-api/store"
)

// table is an insertion-ordered map of records keyed by id.
type table[T any] struct {
	mu    sync.Mutex
	kind  string
	order []primitive.ObjectID
	rows  map[primitive.ObjectID]T
	// unique returns the values that must not repeat across rows.
	unique func(T) []string
}

func newTable[T any](kind string, unique func(T) []string) *table[T] {
	return &table[T]{kind: kind, rows: make(map[primitive.ObjectID]T), unique: unique}
}

func (t *table[T]) parse(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q for model %q", store.ErrInvalidID, id, t.kind)
	}
	return oid, nil
}

// conflict must be called with mu held.
func (t *table[T]) conflict(skip primitive.ObjectID, row T) error {
	if t.unique == nil {
		return nil
	}
	keys := t.unique(row)
	for id, other := range t.rows {
		if id == skip {
			continue
		}
		for i, k := range t.unique(other) {
			if k == keys[i] {
				return fmt.Errorf("%w: E11000 duplicate key error on %s", store.ErrDuplicateKey, strings.ToLower(t.kind))
			}
		}
	}
	return nil
}

func (t *table[T]) insert(id primitive.ObjectID, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.conflict(id, row); err != nil {
		return err
	}
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
	return nil
}

func (t *table[T]) all() []T {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) get(id string) (*T, error) {
	oid, err := t.parse(id)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[oid]
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", t.kind, id, store.ErrNotFound)
	}
	return &row, nil
}

func (t *table[T]) update(id string, fn func(T) T) (*T, error) {
	oid, err := t.parse(id)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[oid]
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", t.kind, id, store.ErrNotFound)
	}
	next := fn(row)
	if err := t.conflict(oid, next); err != nil {
		return nil, err
	}
	t.rows[oid] = next
	return &next, nil
}

func (t *table[T]) remove(id string) (*T, error) {
	oid, err := t.parse(id)
	if err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[oid]
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", t.kind, id, store.ErrNotFound)
	}
	delete(t.rows, oid)
	for i, o := range t.order {
		if o == oid {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return &row, nil
}

// MemStore implements the service repositories in memory.
type MemStore struct {
	students *table[model.Student]
	courses  *table[model.Course]
	tasks    *table[model.Task]
	users    *table[model.User]

	// Err, when set, is returned by every operation.
	Err error
}

func NewMemStore() *MemStore {
	return &MemStore{
		students: newTable("Student", func(s model.Student) []string { return []string{"email:" + s.Email} }),
		courses:  newTable[model.Course]("Course", nil),
		tasks:    newTable[model.Task]("Task", nil),
		users: newTable("User", func(u model.User) []string {
			return []string{"username:" + u.Username, "email:" + u.Email}
		}),
	}
}

func (m *MemStore) Students() *MemStudents { return &MemStudents{m} }
func (m *MemStore) Courses() *MemCourses   { return &MemCourses{m} }
func (m *MemStore) Tasks() *MemTasks       { return &MemTasks{m} }
func (m *MemStore) Users() *MemUsers       { return &MemUsers{m} }

type MemStudents struct{ m *MemStore }

func (r *MemStudents) Insert(_ context.Context, s *model.Student) error {
	if r.m.Err != nil {
		return r.m.Err
	}
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.EnrolledCourses == nil {
		s.EnrolledCourses = []model.Ref{}
	}
	return r.m.students.insert(s.ID, *s)
}

func (r *MemStudents) FindAll(_ context.Context) ([]model.Student, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.students.all(), nil
}

func (r *MemStudents) FindByID(_ context.Context, id string) (*model.Student, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.students.get(id)
}

func (r *MemStudents) UpdateByID(_ context.Context, id string, s model.Student) (*model.Student, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.students.update(id, func(cur model.Student) model.Student {
		cur.Name = s.Name
		cur.Email = s.Email
		cur.Age = s.Age
		if s.EnrolledCourses != nil {
			cur.EnrolledCourses = s.EnrolledCourses
		}
		return cur
	})
}

func (r *MemStudents) DeleteByID(_ context.Context, id string) (*model.Student, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.students.remove(id)
}

// ListWithCourses resolves enrolledCourses against the course table,
// dropping ids that no longer resolve.
func (r *MemStudents) ListWithCourses(_ context.Context) ([]model.StudentWithCourses, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	out := []model.StudentWithCourses{}
	for _, s := range r.m.students.all() {
		joined := model.StudentWithCourses{Student: s, CourseDetails: []model.Course{}}
		for _, ref := range s.EnrolledCourses {
			c, err := r.m.courses.get(ref.Hex())
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			joined.CourseDetails = append(joined.CourseDetails, *c)
		}
		out = append(out, joined)
	}
	return out, nil
}

type MemCourses struct{ m *MemStore }

func (r *MemCourses) Insert(_ context.Context, c *model.Course) error {
	if r.m.Err != nil {
		return r.m.Err
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	return r.m.courses.insert(c.ID, *c)
}

func (r *MemCourses) FindAll(_ context.Context) ([]model.Course, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.courses.all(), nil
}

func (r *MemCourses) FindByID(_ context.Context, id string) (*model.Course, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.courses.get(id)
}

func (r *MemCourses) DeleteByID(_ context.Context, id string) (*model.Course, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.courses.remove(id)
}

// Search approximates the text index with a case-insensitive word match.
func (r *MemCourses) Search(_ context.Context, text string) ([]model.Course, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	terms := strings.Fields(strings.ToLower(text))
	out := []model.Course{}
	for _, c := range r.m.courses.all() {
		words := strings.Fields(strings.ToLower(c.CourseName))
		if matchesAny(words, terms) {
			out = append(out, c)
		}
	}
	return out, nil
}

func matchesAny(words, terms []string) bool {
	for _, w := range words {
		for _, t := range terms {
			if w == t {
				return true
			}
		}
	}
	return false
}

type MemTasks struct{ m *MemStore }

func (r *MemTasks) Insert(_ context.Context, t *model.Task) error {
	if r.m.Err != nil {
		return r.m.Err
	}
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	return r.m.tasks.insert(t.ID, *t)
}

func (r *MemTasks) FindAll(_ context.Context) ([]model.Task, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.tasks.all(), nil
}

func (r *MemTasks) FindByID(_ context.Context, id string) (*model.Task, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.tasks.get(id)
}

func (r *MemTasks) DeleteByID(_ context.Context, id string) (*model.Task, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.tasks.remove(id)
}

type MemUsers struct{ m *MemStore }

func (r *MemUsers) Insert(_ context.Context, u *model.User) error {
	if r.m.Err != nil {
		return r.m.Err
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	return r.m.users.insert(u.ID, *u)
}

func (r *MemUsers) FindAll(_ context.Context) ([]model.User, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.users.all(), nil
}

func (r *MemUsers) FindByID(_ context.Context, id string) (*model.User, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.users.get(id)
}

func (r *MemUsers) DeleteByID(_ context.Context, id string) (*model.User, error) {
	if r.m.Err != nil {
		return nil, r.m.Err
	}
	return r.m.users.remove(id)
}
