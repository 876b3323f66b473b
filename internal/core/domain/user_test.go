package domain

import "testing"

func TestCanDelete_Admin(t *testing.T) {
	u := &User{Username: "root", Role: RoleAdmin}
	if !u.CanDelete() {
		t.Fatalf("admin should be allowed to delete")
	}
}

func TestCanDelete_Regular(t *testing.T) {
	u := &User{Username: "alice", Role: RoleRegular}
	if u.CanDelete() {
		t.Fatalf("regular user should not be allowed to delete")
	}
}

func TestCanDelete_Anonymous(t *testing.T) {
	var u *User
	if u.CanDelete() {
		t.Fatalf("absent user should not be allowed to delete")
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory("Laptop") {
		t.Fatalf("Laptop should be a valid category")
	}
	if ValidCategory("Toaster") {
		t.Fatalf("Toaster should not be a valid category")
	}
}
