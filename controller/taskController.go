package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"student-management-api/model"
	"student-management-api/service"
	"student-management-api/util"
)

type TaskController struct {
	svc    service.TaskService
	logger *zap.Logger
}

func NewTaskController(svc service.TaskService, logger *zap.Logger) *TaskController {
	return &TaskController{svc: svc, logger: logger}
}

func (tc *TaskController) HandleAddTask(w http.ResponseWriter, r *http.Request) {
	var req model.TaskRequest
	if err := decodeBody(r, &req); err != nil {
		failure(w, r, tc.logger, "HandleAddTask", http.StatusBadRequest, err)
		return
	}

	task, err := tc.svc.Create(r.Context(), &req)
	if err != nil {
		failure(w, r, tc.logger, "HandleAddTask", http.StatusBadRequest, err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, task)
}

func (tc *TaskController) HandleGetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := tc.svc.List(r.Context())
	if err != nil {
		failure(w, r, tc.logger, "HandleGetTasks", http.StatusInternalServerError, err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, tasks)
}

func (tc *TaskController) HandleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := tc.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		lookupFailure(w, r, tc.logger, "HandleGetTask", err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, task)
}

func (tc *TaskController) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := tc.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		failure(w, r, tc.logger, "HandleDeleteTask", http.StatusBadRequest, err)
		return
	}
	util.WriteMessage(w, http.StatusOK, "Task deleted successfully")
}
