package models

import (
	"testing"
	"time"
)

func TestCanSubmitContent(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name string
		user User
		want bool
	}{
		{"active", User{Status: UserActive}, true},
		{"banned", User{Status: UserBanned}, false},
		{"suspended", User{Status: UserSuspended, SuspendedUntil: &future}, false},
		{"suspension lapsed", User{Status: UserSuspended, SuspendedUntil: &past}, true},
		{"suspended without deadline", User{Status: UserSuspended}, false},
	}
	for _, tc := range cases {
		if got := tc.user.CanSubmitContent(now); got != tc.want {
			t.Fatalf("%s: CanSubmitContent = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	if (&User{Role: "user"}).IsAdmin() {
		t.Fatal("regular user treated as admin")
	}
	if !(&User{Role: "admin"}).IsAdmin() {
		t.Fatal("admin role not recognized")
	}
}
