package utils

import (
	"testing"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
)

func TestUserTokenRoundTrip(t *testing.T) {
	user := &types.User{
		ID:         "user-42",
		Email:      "grace@example.com",
		FullName:   "Grace",
		Role:       types.USER_ROLE_ADMIN,
		Department: "Engineering",
	}

	token, err := GenerateUserToken(user)
	if err != nil {
		t.Fatalf("GenerateUserToken() error: %v", err)
	}

	claims, err := ParseUserToken(token)
	if err != nil {
		t.Fatalf("ParseUserToken() error: %v", err)
	}
	if claims.ID != user.ID || claims.Email != user.Email || claims.Role != user.Role {
		t.Errorf("claims = %+v, want fields of %+v", claims, user)
	}
	if claims.Subject != user.ID {
		t.Errorf("Subject = %q, want %q", claims.Subject, user.ID)
	}
}

func TestParseUserTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseUserToken("not-a-token"); err == nil {
		t.Error("ParseUserToken() accepted malformed token")
	}

	token, err := GenerateUserToken(&types.User{ID: "u"})
	if err != nil {
		t.Fatalf("GenerateUserToken() error: %v", err)
	}
	if _, err := ParseUserToken(token + "tampered"); err == nil {
		t.Error("ParseUserToken() accepted tampered token")
	}
}
