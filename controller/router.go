package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"student-management-api/service"
	"student-management-api/util"
)

const rootMessage = "Student Management System API is working!"

// NewRouter wires every endpoint. Each request runs independently; a panic
// in one handler becomes a 500 for that request only.
func NewRouter(svc *service.Service, allowOrigins []string, logger *zap.Logger) http.Handler {
	students := NewStudentController(svc.Student, logger)
	courses := NewCourseController(svc.Course, logger)
	tasks := NewTaskController(svc.Task, logger)
	users := NewUserController(svc.User, logger)

	router := chi.NewRouter()
	router.Use(util.RequestID)
	router.Use(util.AccessLog(logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.New(cors.Options{
		AllowedOrigins: allowOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", util.RequestIDHeader},
		ExposedHeaders: []string{util.RequestIDHeader},
	}).Handler)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		util.WriteText(w, http.StatusOK, rootMessage)
	})

	router.Route("/api", func(api chi.Router) {
		api.Route("/students", func(r chi.Router) {
			r.Post("/", students.HandleAddStudent)
			r.Get("/", students.HandleGetStudents)
			r.Get("/courses", students.HandleGetStudentsWithCourses)
			r.Get("/{id}", students.HandleGetStudent)
			r.Put("/{id}", students.HandleEditStudent)
			r.Delete("/{id}", students.HandleDeleteStudent)
		})
		api.Route("/courses", func(r chi.Router) {
			r.Post("/", courses.HandleNewCourse)
			r.Get("/", courses.HandleGetCourses)
			r.Get("/{id}", courses.HandleGetCourse)
			r.Delete("/{id}", courses.HandleDeleteCourse)
		})
		api.Route("/tasks", func(r chi.Router) {
			r.Post("/", tasks.HandleAddTask)
			r.Get("/", tasks.HandleGetTasks)
			r.Get("/{id}", tasks.HandleGetTask)
			r.Delete("/{id}", tasks.HandleDeleteTask)
		})
		api.Route("/users", func(r chi.Router) {
			r.Post("/", users.HandleAddUser)
			r.Get("/", users.HandleGetUsers)
			r.Get("/{id}", users.HandleGetUser)
			r.Delete("/{id}", users.HandleDeleteUser)
		})
	})

	return router
}
