package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/utils"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user, err := svc.Register(context.Background(), &types.RegisterRequest{
		Email:    "dana@example.com",
		Password: "hunter2!",
		FullName: "Dana",
	})
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if user.Role != types.USER_ROLE_EMPLOYEE {
		t.Errorf("Role = %q, want %q", user.Role, types.USER_ROLE_EMPLOYEE)
	}
	if user.Password == "hunter2!" {
		t.Error("password stored in plain text")
	}
	if !utils.CheckPassword(user.Password, "hunter2!") {
		t.Error("stored hash does not verify")
	}
	if user.Tasks == nil {
		t.Error("task collection not initialized")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	req := &types.RegisterRequest{Email: "dup@example.com", Password: "pw123456", FullName: "One"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); !errors.Is(err, types.ErrEmailTaken) {
		t.Errorf("Register() duplicate error = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &types.RegisterRequest{Email: "x@example.com"})
	if !errors.Is(err, types.ErrInvalidRequest) {
		t.Errorf("Register() error = %v, want ErrInvalidRequest", err)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	if _, err := svc.Register(context.Background(), &types.RegisterRequest{
		Email:    "erin@example.com",
		Password: "correct-horse",
		FullName: "Erin",
	}); err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	user, token, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "erin@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if token == "" {
		t.Error("Login() returned empty token")
	}
	claims, err := utils.ParseUserToken(token)
	if err != nil {
		t.Fatalf("ParseUserToken() error: %v", err)
	}
	if claims.ID != user.ID || claims.Email != "erin@example.com" {
		t.Errorf("claims = %+v", claims)
	}

	if _, _, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "erin@example.com",
		Password: "wrong",
	}); !errors.Is(err, types.ErrInvalidCredentials) {
		t.Errorf("Login() wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	}); !errors.Is(err, types.ErrInvalidCredentials) {
		t.Errorf("Login() unknown email error = %v, want ErrInvalidCredentials", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	t.Parallel()
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user := userRepo.addUser(&types.User{
		Email:      "frank@example.com",
		FullName:   "Frank",
		Role:       types.USER_ROLE_EMPLOYEE,
		Department: "Engineering",
		JobTitle:   "Developer",
		Phone:      "555-0100",
	})

	updated, err := svc.UpdateProfile(context.Background(), user.ID, &types.UpdateProfileRequest{
		JobTitle: "Senior Developer",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error: %v", err)
	}
	if updated.JobTitle != "Senior Developer" {
		t.Errorf("JobTitle = %q, want %q", updated.JobTitle, "Senior Developer")
	}
	if updated.Department != "Engineering" || updated.Phone != "555-0100" || updated.FullName != "Frank" {
		t.Errorf("unset fields changed: %+v", updated)
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	t.Parallel()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.UpdateProfile(context.Background(), "missing", &types.UpdateProfileRequest{Phone: "1"})
	if !errors.Is(err, types.ErrUserNotFound) {
		t.Errorf("UpdateProfile() error = %v, want ErrUserNotFound", err)
	}
}
