package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"student-management-api/model"
	"student-management-api/service"
	"student-management-api/util"
)

// UserController serves /api/users. Passwords go in, never come out.
type UserController struct {
	svc    service.UserService
	logger *zap.Logger
}

func NewUserController(svc service.UserService, logger *zap.Logger) *UserController {
	return &UserController{svc: svc, logger: logger}
}

func (uc *UserController) HandleAddUser(w http.ResponseWriter, r *http.Request) {
	var req model.UserRequest
	if err := decodeBody(r, &req); err != nil {
		failure(w, r, uc.logger, "HandleAddUser", http.StatusBadRequest, err)
		return
	}

	user, err := uc.svc.Create(r.Context(), &req)
	if err != nil {
		failure(w, r, uc.logger, "HandleAddUser", http.StatusBadRequest, err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusCreated, user)
}

func (uc *UserController) HandleGetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := uc.svc.List(r.Context())
	if err != nil {
		failure(w, r, uc.logger, "HandleGetUsers", http.StatusInternalServerError, err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, users)
}

func (uc *UserController) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := uc.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		lookupFailure(w, r, uc.logger, "HandleGetUser", err)
		return
	}
	util.WriteSuccessResponse(w, http.StatusOK, user)
}

func (uc *UserController) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := uc.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		failure(w, r, uc.logger, "HandleDeleteUser", http.StatusBadRequest, err)
		return
	}
	util.WriteMessage(w, http.StatusOK, "User deleted successfully")
}
