package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/teco-Runi/task-manager-app/internal/models"
)

// TaskManager is the service surface the handlers call
type TaskManager interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) (*models.UserSummary, error)
	ListTasks(ctx context.Context, email string) ([]models.Task, error)
	AddTask(ctx context.Context, email, taskText, status string) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type Handler struct {
	svc TaskManager
	log *logrus.Logger
}

func NewHandler(svc TaskManager, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles user registration
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	if err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string              `json:"message"`
	User    *models.UserSummary `json:"user"`
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Message: "Login successful", User: user})
}

// ListTasks returns the tasks owned by the email in the query string
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.ListTasks(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

type createTaskRequest struct {
	Email    string `json:"email"`
	TaskText string `json:"taskText"`
	Status   string `json:"status"`
}

// CreateTask handles task creation
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	task, err := h.svc.AddTask(r.Context(), req.Email, req.TaskText, req.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// UpdateTask applies a partial update and returns the post-update task.
// An unknown id responds 200 with a null body rather than 404.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var patch models.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	task, err := h.svc.UpdateTask(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// DeleteTask removes a task by id; deleting an unknown id still succeeds
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTask(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Task deleted"})
}
