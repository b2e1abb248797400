package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/middleware"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/utils"
	"github.com/gin-gonic/gin"
)

// stubTaskService returns canned results, recording the ids it was called
// with.
type stubTaskService struct {
	task       *types.Task
	err        error
	gotOwnerID string
	gotTaskID  string
}

func (s *stubTaskService) AddTask(ctx context.Context, ownerID string, req *types.AddTaskRequest) (*types.Task, error) {
	s.gotOwnerID = ownerID
	return s.task, s.err
}

func (s *stubTaskService) UpdateTask(ctx context.Context, ownerID, taskID string, req *types.UpdateTaskRequest) (*types.Task, error) {
	s.gotOwnerID = ownerID
	s.gotTaskID = taskID
	return s.task, s.err
}

func (s *stubTaskService) DeleteTask(ctx context.Context, ownerID, taskID string) (*types.Task, error) {
	s.gotOwnerID = ownerID
	s.gotTaskID = taskID
	return s.task, s.err
}

func (s *stubTaskService) ListTasks(ctx context.Context, ownerID string) ([]types.Task, error) {
	s.gotOwnerID = ownerID
	if s.err != nil {
		return nil, s.err
	}
	return []types.Task{*s.task}, nil
}

func (s *stubTaskService) AssignTask(ctx context.Context, actor *types.User, employeeID string, req *types.AddTaskRequest) (*types.Task, error) {
	s.gotOwnerID = employeeID
	return s.task, s.err
}

func newTaskRouter(svc *stubTaskService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewTaskHandler(svc, nil)
	authed := router.Group("/api/v1")
	authed.Use(middleware.AuthMiddleware)
	authed.POST("/tasks", h.HandleAddTask)
	authed.PUT("/tasks/:taskId", h.HandleUpdateTask)
	authed.DELETE("/tasks/:taskId", h.HandleDeleteTask)
	return router
}

func authToken(t *testing.T, id string) string {
	t.Helper()
	token, err := utils.GenerateUserToken(&types.User{ID: id, FullName: "Tester", Role: types.USER_ROLE_EMPLOYEE})
	if err != nil {
		t.Fatalf("GenerateUserToken() error: %v", err)
	}
	return "Bearer " + token
}

func TestAddTaskRoute(t *testing.T) {
	svc := &stubTaskService{task: &types.Task{ID: "t1", TaskName: "demo", Status: types.TASK_STATUS_PENDING}}
	router := newTaskRouter(svc)

	body, _ := json.Marshal(types.AddTaskRequest{TaskName: "demo"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewReader(body))
	req.Header.Set("Authorization", authToken(t, "user-7"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}
	if svc.gotOwnerID != "user-7" {
		t.Errorf("owner id = %q, want claims subject", svc.gotOwnerID)
	}
	var resp types.TaskResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response decode error: %v", err)
	}
	if resp.Task == nil || resp.Task.ID != "t1" {
		t.Errorf("response = %+v", resp)
	}
}

func TestUpdateTaskRouteNotFound(t *testing.T) {
	svc := &stubTaskService{err: types.ErrTaskNotFound}
	router := newTaskRouter(svc)

	body, _ := json.Marshal(types.UpdateTaskRequest{Status: types.TASK_STATUS_COMPLETED})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/tasks/nope", bytes.NewReader(body))
	req.Header.Set("Authorization", authToken(t, "user-7"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if svc.gotTaskID != "nope" {
		t.Errorf("task id = %q, want path param", svc.gotTaskID)
	}
}

func TestTaskRoutesRequireAuth(t *testing.T) {
	router := newTaskRouter(&stubTaskService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewReader([]byte("{}")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status without token = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewReader([]byte("{}")))
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status with bad token = %d, want 401", w.Code)
	}
}
