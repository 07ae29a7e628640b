package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"student-management-api/model"
	"student-management-api/service"
	"student-management-api/util"
)

type StudentController struct {
	svc    service.StudentService
	logger *zap.Logger
}

func NewStudentController(svc service.StudentService, logger *zap.Logger) *StudentController {
	return &StudentController{svc: svc, logger: logger}
}

// HandleAddStudent POST /api/students
func (sc *StudentController) HandleAddStudent(w http.ResponseWriter, r *http.Request) {
	var req model.StudentRequest
	if err := decodeBody(r, &req); err != nil {
		failure(w, r, sc.logger, "HandleAddStudent", http.StatusBadRequest, err)
		return
	}

	student, err := sc.svc.Create(r.Context(), &req)
	if err != nil {
		failure(w, r, sc.logger, "HandleAddStudent", http.StatusBadRequest, err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, student)
}

// HandleGetStudents GET /api/students
func (sc *StudentController) HandleGetStudents(w http.ResponseWriter, r *http.Request) {
	students, err := sc.svc.List(r.Context())
	if err != nil {
		failure(w, r, sc.logger, "HandleGetStudents", http.StatusInternalServerError, err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, students)
}

// HandleGetStudentsWithCourses GET /api/students/courses
func (sc *StudentController) HandleGetStudentsWithCourses(w http.ResponseWriter, r *http.Request) {
	students, err := sc.svc.ListWithCourses(r.Context())
	if err != nil {
		failure(w, r, sc.logger, "HandleGetStudentsWithCourses", http.StatusInternalServerError, err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, students)
}

// HandleGetStudent GET /api/students/{id}
func (sc *StudentController) HandleGetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := sc.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		lookupFailure(w, r, sc.logger, "HandleGetStudent", err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, student)
}

// HandleEditStudent PUT /api/students/{id}
// A missing id answers 200 with a null body unless strict not-found is on.
func (sc *StudentController) HandleEditStudent(w http.ResponseWriter, r *http.Request) {
	var req model.StudentRequest
	if err := decodeBody(r, &req); err != nil {
		failure(w, r, sc.logger, "HandleEditStudent", http.StatusBadRequest, err)
		return
	}

	student, err := sc.svc.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		failure(w, r, sc.logger, "HandleEditStudent", http.StatusBadRequest, err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, student)
}

// HandleDeleteStudent DELETE /api/students/{id}
func (sc *StudentController) HandleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := sc.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		failure(w, r, sc.logger, "HandleDeleteStudent", http.StatusBadRequest, err)
		return
	}
	util.WriteMessage(w, http.StatusOK, "Student deleted successfully")
}
