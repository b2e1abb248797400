package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/repository"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
)

// Listing returns at most this many notifications; the unread count is
// computed separately and is not capped.
const notificationListLimit = 50

// NotificationPublisher receives each notification right after it is
// persisted. Delivery is best-effort.
type NotificationPublisher interface {
	Publish(recipientID string, notification *types.Notification)
}

type NotificationService interface {
	// DispatchTaskCompleted resolves the task's assigner by display name and
	// notifies them that the task was completed. Unknown assigners, "Self"
	// tasks and self-completion are silent no-ops; storage failures are
	// logged, never returned. The triggering task update has already
	// succeeded by the time this runs.
	DispatchTaskCompleted(ctx context.Context, completer *types.User, task *types.Task)
	CreateAssignmentNotification(ctx context.Context, actorID string, req *types.CreateAssignmentNotificationRequest) (*types.Notification, error)
	ListForRecipient(ctx context.Context, recipientID string) ([]*types.Notification, int64, error)
	MarkRead(ctx context.Context, recipientID, id string) (*types.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) error
	Delete(ctx context.Context, recipientID, id string) error
}

type notificationService struct {
	repo      repository.NotificationRepo
	userRepo  repository.UserRepo
	publisher NotificationPublisher
}

// NewNotificationService creates the service. publisher may be nil when no
// realtime stream is attached.
func NewNotificationService(repo repository.NotificationRepo, userRepo repository.UserRepo, publisher NotificationPublisher) NotificationService {
	return &notificationService{
		repo:      repo,
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *notificationService) DispatchTaskCompleted(ctx context.Context, completer *types.User, task *types.Task) {
	if task.Assigner == "" || task.Assigner == types.TASK_ASSIGNER_SELF {
		return
	}
	assigner, err := s.userRepo.GetUserByFullName(ctx, task.Assigner)
	if err != nil {
		// Unknown assigner: the label may belong to someone who renamed
		// themselves or to an external party. Nothing to deliver.
		if !errors.Is(err, types.ErrUserNotFound) {
			log.Printf("Error resolving assigner %q: %v", task.Assigner, err)
		}
		return
	}
	if assigner.ID == completer.ID {
		return
	}
	now := time.Now()
	notification := &types.Notification{
		Recipient: assigner.ID,
		Type:      types.NOTIFICATION_TYPE_TASK_COMPLETED,
		Message:   fmt.Sprintf("%s completed the task \"%s\"", completer.FullName, task.TaskName),
		TaskID:    task.ID,
		// EmployeeID points back at the task owner so the recipient can
		// open the right task list.
		EmployeeID: completer.ID,
		Metadata: types.NotificationMetadata{
			Project:     task.Project,
			TaskName:    task.TaskName,
			CompletedBy: completer.FullName,
			CompletedAt: now.Unix(),
		},
		CreatedAt: now.Unix(),
	}
	if _, err := s.repo.Create(ctx, notification); err != nil {
		log.Printf("Error creating completion notification for %s: %v", assigner.ID, err)
		return
	}
	if s.publisher != nil {
		s.publisher.Publish(assigner.ID, notification)
	}
}

func (s *notificationService) CreateAssignmentNotification(ctx context.Context, actorID string, req *types.CreateAssignmentNotificationRequest) (*types.Notification, error) {
	if req.RecipientID == "" || req.TaskName == "" || req.Assigner == "" {
		return nil, types.ErrInvalidRequest
	}
	if req.RecipientID == actorID {
		return nil, types.ErrInvalidRequest
	}
	notification := &types.Notification{
		Recipient: req.RecipientID,
		Type:      types.NOTIFICATION_TYPE_TASK_ASSIGNED,
		Message:   fmt.Sprintf("%s assigned you the task \"%s\"", req.Assigner, req.TaskName),
		TaskID:    req.TaskID,
		Metadata: types.NotificationMetadata{
			Assigner: req.Assigner,
			Project:  req.Project,
			TaskName: req.TaskName,
			DueDate:  req.DueDate,
		},
		CreatedAt: time.Now().Unix(),
	}
	if _, err := s.repo.Create(ctx, notification); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		s.publisher.Publish(req.RecipientID, notification)
	}
	return notification, nil
}

func (s *notificationService) ListForRecipient(ctx context.Context, recipientID string) ([]*types.Notification, int64, error) {
	notifications, err := s.repo.ListByRecipient(ctx, recipientID, notificationListLimit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, 0, err
	}
	return notifications, unread, nil
}

func (s *notificationService) MarkRead(ctx context.Context, recipientID, id string) (*types.Notification, error) {
	return s.repo.MarkRead(ctx, recipientID, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.repo.MarkAllRead(ctx, recipientID)
}

func (s *notificationService) Delete(ctx context.Context, recipientID, id string) error {
	return s.repo.Delete(ctx, recipientID, id)
}
