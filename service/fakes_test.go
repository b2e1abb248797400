package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
)

// fakeUserRepo is an in-memory stand-in for the mongo-backed user repository.
// forceConflicts makes the next n task-array writes fail with a version
// conflict, as if a concurrent writer had landed first.
type fakeUserRepo struct {
	mu             sync.Mutex
	users          map[string]*types.User
	nextID         int
	forceConflicts int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*types.User)}
}

func copyUser(u *types.User) *types.User {
	cp := *u
	cp.Tasks = make([]types.Task, len(u.Tasks))
	copy(cp.Tasks, u.Tasks)
	return &cp
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *types.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return "", types.ErrEmailTaken
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[user.ID] = copyUser(user)
	return user.ID, nil
}

func (r *fakeUserRepo) GetUser(ctx context.Context, id string) (*types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, types.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, types.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByFullName(ctx context.Context, fullName string) (*types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.FullName == fullName {
			return copyUser(u), nil
		}
	}
	return nil, types.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByDepartment(ctx context.Context, department string) ([]*types.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []*types.User
	for _, u := range r.users {
		if u.Department == department {
			users = append(users, copyUser(u))
		}
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, id string, user *types.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[id]
	if !ok {
		return types.ErrUserNotFound
	}
	cp := copyUser(user)
	cp.Tasks = stored.Tasks
	cp.TaskVersion = stored.TaskVersion
	r.users[id] = cp
	return nil
}

func (r *fakeUserRepo) UpdateTasks(ctx context.Context, id string, version int64, tasks []types.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return types.ErrUserNotFound
	}
	if r.forceConflicts > 0 {
		r.forceConflicts--
		u.TaskVersion++
		return types.ErrVersionConflict
	}
	if u.TaskVersion != version {
		return types.ErrVersionConflict
	}
	u.Tasks = make([]types.Task, len(tasks))
	copy(u.Tasks, tasks)
	u.TaskVersion++
	return nil
}

func (r *fakeUserRepo) PaginateUser(ctx context.Context, page, limit int64) ([]*types.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []*types.User
	for _, u := range r.users {
		users = append(users, copyUser(u))
	}
	return users, int64(len(users)), nil
}

func (r *fakeUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CountTasksByStatus(ctx context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int64)
	for _, u := range r.users {
		for _, t := range u.Tasks {
			counts[t.Status]++
		}
	}
	return counts, nil
}

func (r *fakeUserRepo) DeleteUser(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return types.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) addUser(u *types.User) *types.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	if u.ID == "" {
		u.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	r.users[u.ID] = copyUser(u)
	return u
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[string]*types.Notification
	nextID        int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]*types.Notification)}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *types.Notification) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	n.ID = fmt.Sprintf("notif-%d", r.nextID)
	cp := *n
	r.notifications[n.ID] = &cp
	return n.ID, nil
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID string, limit int64) ([]*types.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*types.Notification
	for _, n := range r.notifications {
		if n.Recipient == recipientID {
			cp := *n
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt > list[j].CreatedAt })
	if int64(len(list)) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, notif := range r.notifications {
		if notif.Recipient == recipientID && !notif.Read {
			n++
		}
	}
	return n, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, recipientID, id string) (*types.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok || n.Recipient != recipientID {
		return nil, types.ErrNotificationNotFound
	}
	n.Read = true
	cp := *n
	return &cp, nil
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.Recipient == recipientID {
			n.Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, recipientID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok || n.Recipient != recipientID {
		return types.ErrNotificationNotFound
	}
	delete(r.notifications, id)
	return nil
}

func (r *fakeNotificationRepo) byRecipient(recipientID string) []*types.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*types.Notification
	for _, n := range r.notifications {
		if n.Recipient == recipientID {
			cp := *n
			list = append(list, &cp)
		}
	}
	return list
}
