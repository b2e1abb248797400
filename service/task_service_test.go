package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
)

func newTaskFixture(t *testing.T) (*fakeUserRepo, *fakeNotificationRepo, TaskService, *types.User) {
	t.Helper()
	userRepo := newFakeUserRepo()
	notifRepo := newFakeNotificationRepo()
	notifications := NewNotificationService(notifRepo, userRepo, nil)
	taskService := NewTaskService(userRepo, notifications)
	owner := userRepo.addUser(&types.User{
		Email:    "bob@example.com",
		FullName: "Bob",
		Role:     types.USER_ROLE_EMPLOYEE,
	})
	return userRepo, notifRepo, taskService, owner
}

func TestAddTaskDefaults(t *testing.T) {
	t.Parallel()
	userRepo, _, taskService, owner := newTaskFixture(t)

	task, err := taskService.AddTask(context.Background(), owner.ID, &types.AddTaskRequest{
		TaskName: "write report",
	})
	if err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}
	if task.ID == "" {
		t.Error("AddTask() returned task without id")
	}
	if task.Assigner != types.TASK_ASSIGNER_SELF {
		t.Errorf("Assigner = %q, want %q", task.Assigner, types.TASK_ASSIGNER_SELF)
	}
	if task.Status != types.TASK_STATUS_PENDING {
		t.Errorf("Status = %q, want %q", task.Status, types.TASK_STATUS_PENDING)
	}
	if task.StartDate == "" {
		t.Error("StartDate not defaulted")
	}
	if task.EndDate != "" {
		t.Errorf("EndDate = %q, want empty", task.EndDate)
	}

	stored, err := userRepo.GetUser(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("GetUser() error: %v", err)
	}
	if len(stored.Tasks) != 1 {
		t.Fatalf("stored %d tasks, want 1", len(stored.Tasks))
	}
	if stored.Tasks[0].ID != task.ID || stored.Tasks[0].TaskName != "write report" {
		t.Errorf("stored task = %+v, want returned task", stored.Tasks[0])
	}
}

func TestAddTaskUniqueIDs(t *testing.T) {
	t.Parallel()
	userRepo, _, taskService, owner := newTaskFixture(t)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		task, err := taskService.AddTask(context.Background(), owner.ID, &types.AddTaskRequest{TaskName: "t"})
		if err != nil {
			t.Fatalf("AddTask() error: %v", err)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate task id %q", task.ID)
		}
		seen[task.ID] = true
	}
	stored, _ := userRepo.GetUser(context.Background(), owner.ID)
	if len(stored.Tasks) != 10 {
		t.Errorf("stored %d tasks, want 10", len(stored.Tasks))
	}
}

func TestAddTaskUnknownOwner(t *testing.T) {
	t.Parallel()
	_, _, taskService, _ := newTaskFixture(t)

	_, err := taskService.AddTask(context.Background(), "missing", &types.AddTaskRequest{TaskName: "t"})
	if !errors.Is(err, types.ErrUserNotFound) {
		t.Errorf("AddTask() error = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateTaskPartial(t *testing.T) {
	t.Parallel()
	_, _, taskService, owner := newTaskFixture(t)

	task, err := taskService.AddTask(context.Background(), owner.ID, &types.AddTaskRequest{
		TaskName:  "write report",
		Project:   "Apollo",
		StartDate: "2026-01-05",
		Remark:    "first draft",
	})
	if err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}

	// Only the status is provided; everything else must survive.
	updated, err := taskService.UpdateTask(context.Background(), owner.ID, task.ID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_IN_PROGRESS,
	})
	if err != nil {
		t.Fatalf("UpdateTask() error: %v", err)
	}
	if updated.TaskName != "write report" || updated.Project != "Apollo" ||
		updated.StartDate != "2026-01-05" || updated.Remark != "first draft" {
		t.Errorf("unset fields changed: %+v", updated)
	}
	if updated.Status != types.TASK_STATUS_IN_PROGRESS {
		t.Errorf("Status = %q, want %q", updated.Status, types.TASK_STATUS_IN_PROGRESS)
	}
}

func TestUpdateTaskRemarkEmptyString(t *testing.T) {
	t.Parallel()
	_, _, taskService, owner := newTaskFixture(t)

	task, err := taskService.AddTask(context.Background(), owner.ID, &types.AddTaskRequest{
		TaskName: "t",
		Remark:   "old remark",
	})
	if err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}

	empty := ""
	updated, err := taskService.UpdateTask(context.Background(), owner.ID, task.ID, &types.UpdateTaskRequest{
		Remark: &empty,
	})
	if err != nil {
		t.Fatalf("UpdateTask() error: %v", err)
	}
	if updated.Remark != "" {
		t.Errorf("Remark = %q, want empty string", updated.Remark)
	}

	// Remark omitted entirely: prior value stays.
	updated, err = taskService.UpdateTask(context.Background(), owner.ID, task.ID, &types.UpdateTaskRequest{
		TaskName: "renamed",
	})
	if err != nil {
		t.Fatalf("UpdateTask() error: %v", err)
	}
	if updated.Remark != "" {
		t.Errorf("Remark = %q, want empty string preserved", updated.Remark)
	}
	if updated.TaskName != "renamed" {
		t.Errorf("TaskName = %q, want %q", updated.TaskName, "renamed")
	}
}

func TestCompletionNotifiesAssignerOnce(t *testing.T) {
	t.Parallel()
	userRepo, notifRepo, taskService, owner := newTaskFixture(t)
	alice := userRepo.addUser(&types.User{
		Email:    "alice@example.com",
		FullName: "Alice",
		Role:     types.USER_ROLE_ADMIN,
	})

	task, err := taskService.AddTask(context.Background(), owner.ID, &types.AddTaskRequest{
		TaskName: "audit",
		Assigner: "Alice",
	})
	if err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}

	if _, err := taskService.UpdateTask(context.Background(), owner.ID, task.ID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_COMPLETED,
	}); err != nil {
		t.Fatalf("UpdateTask() error: %v", err)
	}

	got := notifRepo.byRecipient(alice.ID)
	if len(got) != 1 {
		t.Fatalf("got %d notifications, want 1", len(got))
	}
	if got[0].Type != types.NOTIFICATION_TYPE_TASK_COMPLETED {
		t.Errorf("Type = %q, want %q", got[0].Type, types.NOTIFICATION_TYPE_TASK_COMPLETED)
	}
	if got[0].Metadata.CompletedBy != "Bob" || got[0].Metadata.TaskName != "audit" {
		t.Errorf("Metadata = %+v", got[0].Metadata)
	}

	// Same update again: status is already completed, no new notification.
	if _, err := taskService.UpdateTask(context.Background(), owner.ID, task.ID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_COMPLETED,
	}); err != nil {
		t.Fatalf("UpdateTask() error: %v", err)
	}
	if got := notifRepo.byRecipient(alice.ID); len(got) != 1 {
		t.Errorf("got %d notifications after repeat update, want 1", len(got))
	}
}

func TestCompletionSelfAssignedNoNotification(t *testing.T) {
	t.Parallel()
	_, notifRepo, taskService, owner := newTaskFixture(t)

	task, err := taskService.AddTask(context.Background(), owner.ID, &types.AddTaskRequest{
		TaskName: "chores",
	})
	if err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}
	if task.Assigner != types.TASK_ASSIGNER_SELF {
		t.Fatalf("Assigner = %q, want Self", task.Assigner)
	}

	if _, err := taskService.UpdateTask(context.Background(), owner.ID, task.ID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_COMPLETED,
	}); err != nil {
		t.Fatalf("UpdateTask() error: %v", err)
	}
	notifRepo.mu.Lock()
	n := len(notifRepo.notifications)
	notifRepo.mu.Unlock()
	if n != 0 {
		t.Errorf("got %d notifications, want 0", n)
	}
}

func TestCompletionUnknownAssignerSilent(t *testing.T) {
	t.Parallel()
	_, notifRepo, taskService, owner := newTaskFixture(t)

	task, err := taskService.AddTask(context.Background(), owner.ID, &types.AddTaskRequest{
		TaskName: "review",
		Assigner: "Nobody Anyone Knows",
	})
	if err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}

	updated, err := taskService.UpdateTask(context.Background(), owner.ID, task.ID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_COMPLETED,
	})
	if err != nil {
		t.Fatalf("UpdateTask() error: %v", err)
	}
	if updated.Status != types.TASK_STATUS_COMPLETED {
		t.Errorf("Status = %q, want completed", updated.Status)
	}
	notifRepo.mu.Lock()
	n := len(notifRepo.notifications)
	notifRepo.mu.Unlock()
	if n != 0 {
		t.Errorf("got %d notifications, want 0", n)
	}
}

func TestDeleteTaskThenUpdateNotFound(t *testing.T) {
	t.Parallel()
	_, _, taskService, owner := newTaskFixture(t)

	task, err := taskService.AddTask(context.Background(), owner.ID, &types.AddTaskRequest{TaskName: "temp"})
	if err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}

	removed, err := taskService.DeleteTask(context.Background(), owner.ID, task.ID)
	if err != nil {
		t.Fatalf("DeleteTask() error: %v", err)
	}
	if removed.ID != task.ID {
		t.Errorf("DeleteTask() returned %q, want %q", removed.ID, task.ID)
	}

	if _, err := taskService.UpdateTask(context.Background(), owner.ID, task.ID, &types.UpdateTaskRequest{
		Status: types.TASK_STATUS_COMPLETED,
	}); !errors.Is(err, types.ErrTaskNotFound) {
		t.Errorf("UpdateTask() after delete error = %v, want ErrTaskNotFound", err)
	}
}

func TestTaskWriteRetriesOnConflict(t *testing.T) {
	t.Parallel()
	userRepo, _, taskService, owner := newTaskFixture(t)

	userRepo.mu.Lock()
	userRepo.forceConflicts = 2
	userRepo.mu.Unlock()

	task, err := taskService.AddTask(context.Background(), owner.ID, &types.AddTaskRequest{TaskName: "contended"})
	if err != nil {
		t.Fatalf("AddTask() error after conflicts: %v", err)
	}
	stored, _ := userRepo.GetUser(context.Background(), owner.ID)
	if len(stored.Tasks) != 1 || stored.Tasks[0].ID != task.ID {
		t.Errorf("task not stored after retries: %+v", stored.Tasks)
	}
}

func TestTaskWriteGivesUpAfterMaxConflicts(t *testing.T) {
	t.Parallel()
	userRepo, _, taskService, owner := newTaskFixture(t)

	userRepo.mu.Lock()
	userRepo.forceConflicts = maxTaskWriteRetries
	userRepo.mu.Unlock()

	_, err := taskService.AddTask(context.Background(), owner.ID, &types.AddTaskRequest{TaskName: "contended"})
	if !errors.Is(err, types.ErrVersionConflict) {
		t.Errorf("AddTask() error = %v, want ErrVersionConflict", err)
	}
}

func TestAssignTaskNotifiesAssignee(t *testing.T) {
	t.Parallel()
	userRepo, notifRepo, taskService, owner := newTaskFixture(t)
	admin := userRepo.addUser(&types.User{
		Email:    "carol@example.com",
		FullName: "Carol",
		Role:     types.USER_ROLE_ADMIN,
	})

	task, err := taskService.AssignTask(context.Background(), admin, owner.ID, &types.AddTaskRequest{
		TaskName: "quarterly numbers",
		Project:  "Finance",
		EndDate:  "2026-09-30",
	})
	if err != nil {
		t.Fatalf("AssignTask() error: %v", err)
	}
	if task.Assigner != "Carol" {
		t.Errorf("Assigner = %q, want %q", task.Assigner, "Carol")
	}

	got := notifRepo.byRecipient(owner.ID)
	if len(got) != 1 {
		t.Fatalf("got %d notifications, want 1", len(got))
	}
	if got[0].Type != types.NOTIFICATION_TYPE_TASK_ASSIGNED {
		t.Errorf("Type = %q, want %q", got[0].Type, types.NOTIFICATION_TYPE_TASK_ASSIGNED)
	}
	if got[0].Metadata.DueDate != "2026-09-30" {
		t.Errorf("DueDate = %q, want %q", got[0].Metadata.DueDate, "2026-09-30")
	}
}

func TestAssignTaskToSelfSkipsNotification(t *testing.T) {
	t.Parallel()
	userRepo, notifRepo, taskService, _ := newTaskFixture(t)
	admin := userRepo.addUser(&types.User{
		Email:    "carol@example.com",
		FullName: "Carol",
		Role:     types.USER_ROLE_ADMIN,
	})

	if _, err := taskService.AssignTask(context.Background(), admin, admin.ID, &types.AddTaskRequest{
		TaskName: "own todo",
	}); err != nil {
		t.Fatalf("AssignTask() error: %v", err)
	}
	if got := notifRepo.byRecipient(admin.ID); len(got) != 0 {
		t.Errorf("got %d notifications, want 0", len(got))
	}
}
