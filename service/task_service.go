package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/repository"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/google/uuid"
)

// Retries for the versioned task-array write. Conflicts only happen when two
// writers race on the same user document, so a handful of attempts is plenty.
const maxTaskWriteRetries = 3

const taskDateLayout = "2006-01-02"

type TaskService interface {
	AddTask(ctx context.Context, ownerID string, req *types.AddTaskRequest) (*types.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID string, req *types.UpdateTaskRequest) (*types.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) (*types.Task, error)
	ListTasks(ctx context.Context, ownerID string) ([]types.Task, error)
	// AssignTask adds a task to another user's collection on behalf of the
	// actor and notifies the assignee.
	AssignTask(ctx context.Context, actor *types.User, employeeID string, req *types.AddTaskRequest) (*types.Task, error)
}

type taskService struct {
	userRepo      repository.UserRepo
	notifications NotificationService
}

func NewTaskService(userRepo repository.UserRepo, notifications NotificationService) TaskService {
	return &taskService{
		userRepo:      userRepo,
		notifications: notifications,
	}
}

func (s *taskService) AddTask(ctx context.Context, ownerID string, req *types.AddTaskRequest) (*types.Task, error) {
	if req.TaskName == "" {
		return nil, types.ErrInvalidRequest
	}
	var task types.Task
	err := s.withTasks(ctx, ownerID, func(owner *types.User, tasks []types.Task) ([]types.Task, error) {
		now := time.Now()
		task = types.Task{
			ID:        uuid.NewString(),
			TaskName:  req.TaskName,
			Project:   req.Project,
			Assigner:  req.Assigner,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Remark:    req.Remark,
			Status:    req.Status,
			CreateAt:  now.Unix(),
			UpdateAt:  now.Unix(),
		}
		if task.Assigner == "" {
			task.Assigner = types.TASK_ASSIGNER_SELF
		}
		if task.StartDate == "" {
			task.StartDate = now.Format(taskDateLayout)
		}
		if task.Status == "" {
			task.Status = types.TASK_STATUS_PENDING
		}
		return append(tasks, task), nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, ownerID, taskID string, req *types.UpdateTaskRequest) (*types.Task, error) {
	var (
		updated   types.Task
		completed bool
		owner     *types.User
	)
	err := s.withTasks(ctx, ownerID, func(user *types.User, tasks []types.Task) ([]types.Task, error) {
		idx := findTask(tasks, taskID)
		if idx < 0 {
			return nil, types.ErrTaskNotFound
		}
		prev := tasks[idx]
		next := prev

		// Empty strings mean "keep the prior value" for every field except
		// the remark, which is a pointer so an explicit empty remark clears
		// the old one.
		if req.TaskName != "" {
			next.TaskName = req.TaskName
		}
		if req.Project != "" {
			next.Project = req.Project
		}
		if req.Assigner != "" {
			next.Assigner = req.Assigner
		}
		if req.StartDate != "" {
			next.StartDate = req.StartDate
		}
		if req.EndDate != "" {
			next.EndDate = req.EndDate
		}
		if req.Remark != nil {
			next.Remark = *req.Remark
		}
		if req.Status != "" {
			next.Status = req.Status
		}
		next.UpdateAt = time.Now().Unix()

		tasks[idx] = next
		updated = next
		completed = next.Status == types.TASK_STATUS_COMPLETED && prev.Status != types.TASK_STATUS_COMPLETED
		owner = user
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	if completed {
		s.notifications.DispatchTaskCompleted(ctx, owner, &updated)
	}
	return &updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, ownerID, taskID string) (*types.Task, error) {
	var removed types.Task
	err := s.withTasks(ctx, ownerID, func(owner *types.User, tasks []types.Task) ([]types.Task, error) {
		idx := findTask(tasks, taskID)
		if idx < 0 {
			return nil, types.ErrTaskNotFound
		}
		removed = tasks[idx]
		return append(tasks[:idx], tasks[idx+1:]...), nil
	})
	if err != nil {
		return nil, err
	}
	return &removed, nil
}

func (s *taskService) ListTasks(ctx context.Context, ownerID string) ([]types.Task, error) {
	owner, err := s.userRepo.GetUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return owner.Tasks, nil
}

func (s *taskService) AssignTask(ctx context.Context, actor *types.User, employeeID string, req *types.AddTaskRequest) (*types.Task, error) {
	if req.Assigner == "" {
		req.Assigner = actor.FullName
	}
	task, err := s.AddTask(ctx, employeeID, req)
	if err != nil {
		return nil, err
	}
	if employeeID != actor.ID {
		_, err := s.notifications.CreateAssignmentNotification(ctx, actor.ID, &types.CreateAssignmentNotificationRequest{
			RecipientID: employeeID,
			TaskName:    task.TaskName,
			Assigner:    task.Assigner,
			Project:     task.Project,
			DueDate:     task.EndDate,
			TaskID:      task.ID,
		})
		if err != nil {
			// The task is already assigned; the missing notification is not
			// worth failing the request over.
			log.Printf("Error creating assignment notification for %s: %v", employeeID, err)
		}
	}
	return task, nil
}

// withTasks runs one read-modify-write cycle over the owner's embedded task
// array, retrying on version conflict. mutate receives a copy of the array
// and returns its replacement.
func (s *taskService) withTasks(ctx context.Context, ownerID string, mutate func(owner *types.User, tasks []types.Task) ([]types.Task, error)) error {
	var err error
	for attempt := 0; attempt < maxTaskWriteRetries; attempt++ {
		var owner *types.User
		owner, err = s.userRepo.GetUser(ctx, ownerID)
		if err != nil {
			return err
		}
		tasks := make([]types.Task, len(owner.Tasks))
		copy(tasks, owner.Tasks)

		tasks, err = mutate(owner, tasks)
		if err != nil {
			return err
		}
		err = s.userRepo.UpdateTasks(ctx, ownerID, owner.TaskVersion, tasks)
		if err == nil {
			return nil
		}
		if !errors.Is(err, types.ErrVersionConflict) {
			return err
		}
	}
	return err
}

func findTask(tasks []types.Task, taskID string) int {
	for i := range tasks {
		if tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}
