package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"student-management-api/model"
	"student-management-api/service"
	"student-management-api/util"
)

type CourseController struct {
	svc    service.CourseService
	logger *zap.Logger
}

func NewCourseController(svc service.CourseService, logger *zap.Logger) *CourseController {
	return &CourseController{svc: svc, logger: logger}
}

// HandleNewCourse POST /api/courses
func (cc *CourseController) HandleNewCourse(w http.ResponseWriter, r *http.Request) {
	var req model.CourseRequest
	if err := decodeBody(r, &req); err != nil {
		failure(w, r, cc.logger, "HandleNewCourse", http.StatusBadRequest, err)
		return
	}

	course, err := cc.svc.Create(r.Context(), &req)
	if err != nil {
		failure(w, r, cc.logger, "HandleNewCourse", http.StatusBadRequest, err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, course)
}

// HandleGetCourses GET /api/courses[?q=text]
func (cc *CourseController) HandleGetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := cc.svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		failure(w, r, cc.logger, "HandleGetCourses", http.StatusInternalServerError, err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, courses)
}

// HandleGetCourse GET /api/courses/{id}
func (cc *CourseController) HandleGetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := cc.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		lookupFailure(w, r, cc.logger, "HandleGetCourse", err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, course)
}

// HandleDeleteCourse DELETE /api/courses/{id}
func (cc *CourseController) HandleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	if err := cc.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		failure(w, r, cc.logger, "HandleDeleteCourse", http.StatusBadRequest, err)
		return
	}
	util.WriteMessage(w, http.StatusOK, "Course deleted successfully")
}
