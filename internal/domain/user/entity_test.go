package user

import "testing"

func TestRoleCanTransitionTo(t *testing.T) {
	tests := []struct {
		from Role
		to   Role
		want bool
	}{
		{RoleGuest, RoleCandidate, true},
		{RoleGuest, RoleEmployee, true},
		{RoleGuest, RoleAdmin, false},
		{RoleCandidate, RoleEmployee, true},
		{RoleCandidate, RoleGuest, true},
		{RoleCandidate, RoleAdmin, false},
		{RoleEmployee, RoleAdmin, true},
		{RoleEmployee, RoleGuest, false},
		{RoleEmployee, RoleCandidate, false},
		{RoleAdmin, RoleEmployee, false},
		{RoleAdmin, RoleGuest, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleGuest, RoleCandidate, RoleEmployee, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("Valid(%s) = false, want true", r)
		}
	}
	if Role("superuser").Valid() {
		t.Error("Valid(superuser) = true, want false")
	}
}

func TestUserIsEmployed(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleGuest, false},
		{RoleCandidate, false},
		{RoleEmployee, true},
		{RoleAdmin, true},
	}

	for _, tt := range tests {
		u := User{Role: tt.role}
		if got := u.IsEmployed(); got != tt.want {
			t.Errorf("IsEmployed(%s) = %v, want %v", tt.role, got, tt.want)
		}
	}
}
