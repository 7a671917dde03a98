package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"moodtunes/internal/pkg/jwtutil"
)

type fakeIdentity struct {
	uid  string
	link string
	err  error
}

func (f *fakeIdentity) SignUp(ctx context.Context, email, password string) (string, error) {
	return f.uid, f.err
}

func (f *fakeIdentity) PasswordResetLink(ctx context.Context, email string) (string, error) {
	return f.link, f.err
}

func TestSignUpReturnsUIDAndSessionToken(t *testing.T) {
	svc := NewAccountService(&fakeIdentity{uid: "uid-42"}, "secret", time.Hour)

	result, err := svc.SignUp(context.Background(), "User@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if result.UID != "uid-42" {
		t.Fatalf("uid = %q", result.UID)
	}

	claims, err := jwtutil.ParseToken("secret", result.Token)
	if err != nil {
		t.Fatalf("parse session token: %v", err)
	}
	if claims.UID != "uid-42" {
		t.Fatalf("token uid = %q", claims.UID)
	}
}

func TestSignUpValidatesInput(t *testing.T) {
	svc := NewAccountService(&fakeIdentity{uid: "uid"}, "secret", time.Hour)

	cases := []struct{ email, password string }{
		{"", "password"},
		{"a@b.c", ""},
		{"   ", "password"},
	}
	for _, tc := range cases {
		if _, err := svc.SignUp(context.Background(), tc.email, tc.password); !errors.Is(err, ErrBadInput) {
			t.Fatalf("(%q, %q): err = %v, want ErrBadInput", tc.email, tc.password, err)
		}
	}
}

func TestSignUpProviderFailure(t *testing.T) {
	svc := NewAccountService(&fakeIdentity{err: errors.New("EMAIL_EXISTS")}, "secret", time.Hour)

	_, err := svc.SignUp(context.Background(), "a@b.c", "password")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
}

func TestPasswordResetLink(t *testing.T) {
	svc := NewAccountService(&fakeIdentity{link: "https://reset.example/x"}, "secret", time.Hour)

	link, err := svc.PasswordResetLink(context.Background(), "a@b.c")
	if err != nil {
		t.Fatalf("PasswordResetLink: %v", err)
	}
	if link != "https://reset.example/x" {
		t.Fatalf("link = %q", link)
	}

	if _, err := svc.PasswordResetLink(context.Background(), "  "); !errors.Is(err, ErrBadInput) {
		t.Fatalf("empty email: err = %v, want ErrBadInput", err)
	}
}
