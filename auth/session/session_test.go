package session

import (
	"testing"
	"time"

	"foodserver/auth/users"

	"github.com/google/uuid"
)

func TestStore(t *testing.T) {
	store := New(time.Hour)
	user := users.User{ID: uuid.New(), Name: "alice", Email: "a@x.com", Role: users.RoleUser}

	sess := store.Create(user)
	got, ok := store.Get(sess.ID)
	if !ok {
		t.Fatal("Get() after Create() = not found")
	}
	if got.ID != user.ID || got.Email != user.Email {
		t.Errorf("Get() = %v, want %v", got, user)
	}

	store.Delete(sess.ID)
	if _, ok := store.Get(sess.ID); ok {
		t.Error("Get() after Delete() = found, want not found")
	}
}

func TestStoreExpiry(t *testing.T) {
	store := New(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	sess := store.Create(users.User{ID: uuid.New()})

	now = now.Add(time.Hour - time.Minute)
	if _, ok := store.Get(sess.ID); !ok {
		t.Fatal("Get() before expiry = not found")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(sess.ID); ok {
		t.Error("Get() after expiry = found, want not found")
	}
}

func TestStoreDeleteUser(t *testing.T) {
	store := New(time.Hour)
	user := users.User{ID: uuid.New()}
	other := users.User{ID: uuid.New()}

	s1 := store.Create(user)
	s2 := store.Create(user)
	s3 := store.Create(other)

	store.DeleteUser(user.ID)

	if _, ok := store.Get(s1.ID); ok {
		t.Error("first user session survived DeleteUser")
	}
	if _, ok := store.Get(s2.ID); ok {
		t.Error("second user session survived DeleteUser")
	}
	if _, ok := store.Get(s3.ID); !ok {
		t.Error("other user's session dropped by DeleteUser")
	}
}
