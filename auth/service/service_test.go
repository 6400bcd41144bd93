package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"foodserver/auth/storage"
	"foodserver/auth/users"

	"github.com/google/uuid"
)

type record struct {
	user   users.User
	secret users.Secret
	otp    *users.OTP
}

type memStorage struct {
	records map[uuid.UUID]*record
}

func newMemStorage() *memStorage {
	return &memStorage{records: make(map[uuid.UUID]*record)}
}

func (m *memStorage) byEmail(email string) *record {
	for _, r := range m.records {
		if r.user.Email == email {
			return r
		}
	}
	return nil
}

func (m *memStorage) CreateUser(_ context.Context, user users.User, secret users.Secret, otp *users.OTP) error {
	if m.byEmail(user.Email) != nil {
		return storage.ErrDuplicateEmail
	}
	m.records[user.ID] = &record{user: user, secret: secret, otp: otp}
	return nil
}

func (m *memStorage) GetUser(_ context.Context, id uuid.UUID) (users.User, error) {
	r, ok := m.records[id]
	if !ok {
		return users.User{}, sql.ErrNoRows
	}
	return r.user, nil
}

func (m *memStorage) GetUserByEmail(_ context.Context, email string) (users.User, error) {
	r := m.byEmail(email)
	if r == nil {
		return users.User{}, sql.ErrNoRows
	}
	return r.user, nil
}

func (m *memStorage) GetUserSecret(_ context.Context, user users.User) (users.Secret, error) {
	if r, ok := m.records[user.ID]; ok {
		return r.secret, nil
	}
	if r := m.byEmail(user.Email); r != nil {
		return r.secret, nil
	}
	return users.Secret{}, sql.ErrNoRows
}

func (m *memStorage) SignIn(_ context.Context, email string, passwordHash []byte) (users.User, error) {
	r := m.byEmail(email)
	if r == nil || !bytes.Equal(r.secret.PasswordHash, passwordHash) {
		return users.User{}, sql.ErrNoRows
	}
	return r.user, nil
}

func (m *memStorage) GetOTP(_ context.Context, email string) (*users.OTP, error) {
	r := m.byEmail(email)
	if r == nil {
		return nil, sql.ErrNoRows
	}
	return r.otp, nil
}

func (m *memStorage) SetOTP(_ context.Context, id uuid.UUID, otp *users.OTP) error {
	r, ok := m.records[id]
	if !ok {
		return sql.ErrNoRows
	}
	r.otp = otp
	return nil
}

func (m *memStorage) UpdateUser(_ context.Context, id uuid.UUID, name string, secret *users.Secret) error {
	r, ok := m.records[id]
	if !ok {
		return sql.ErrNoRows
	}
	if name != "" {
		r.user.Name = name
	}
	if secret != nil {
		r.secret = *secret
	}
	return nil
}

func (m *memStorage) DeleteUser(_ context.Context, id uuid.UUID) error {
	if _, ok := m.records[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.records, id)
	return nil
}

type fakeNotifier struct {
	fail  bool
	sent  []string
	codes []string
}

func (f *fakeNotifier) SendOTP(email, code string) error {
	if f.fail {
		return errors.New("smtp down")
	}
	f.sent = append(f.sent, email)
	f.codes = append(f.codes, code)
	return nil
}

func newTestService(t *testing.T, cfg Config) (*Service, *memStorage, *fakeNotifier) {
	t.Helper()
	if cfg.Expiration == "" {
		cfg.Expiration = "24h"
	}
	st := newMemStorage()
	notifier := &fakeNotifier{}
	svc, err := New(context.Background(), cfg, st, notifier)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return svc, st, notifier
}

const goodPassword = "Secret1!"

func TestRegister(t *testing.T) {
	svc, st, notifier := newTestService(t, Config{})

	user, err := svc.Register(context.Background(), "Alice", "a@x.com", goodPassword)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Role != users.RoleUser {
		t.Errorf("Register() role = %q, want %q", user.Role, users.RoleUser)
	}

	r := st.byEmail("a@x.com")
	if r == nil {
		t.Fatal("user not persisted")
	}
	if bytes.Contains(r.secret.PasswordHash, []byte(goodPassword)) {
		t.Error("password stored in clear")
	}
	if r.otp == nil {
		t.Fatal("otp not set on registration")
	}
	if r.otp.ExpiresAt.Before(time.Now().Add(9 * time.Minute)) {
		t.Error("otp expiry shorter than 10 minutes")
	}
	if len(notifier.codes) != 1 || notifier.codes[0] != r.otp.Code {
		t.Errorf("mailed code %v, stored %q", notifier.codes, r.otp.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{name: "missing name", email: "a@x.com", password: goodPassword},
		{name: "missing email", userName: "Alice", password: goodPassword},
		{name: "missing password", userName: "Alice", email: "a@x.com"},
		{name: "too short", userName: "Alice", email: "a@x.com", password: "short1!"},
		// 9 bytes but only 7 characters, must still be too short
		{name: "multibyte too short", userName: "Alice", email: "a@x.com", password: "Ппass1!"},
		{name: "no digit", userName: "Alice", email: "a@x.com", password: "nodigits!"},
		{name: "no special", userName: "Alice", email: "a@x.com", password: "nospecial1"},
		{name: "no letter", userName: "Alice", email: "a@x.com", password: "12345678!"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc, st, _ := newTestService(t, Config{})
			_, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Register() error = %v, want ErrInvalidInput", err)
			}
			if len(st.records) != 0 {
				t.Error("store written despite validation failure")
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc, st, _ := newTestService(t, Config{})

	first, err := svc.Register(context.Background(), "Alice", "a@x.com", goodPassword)
	if err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	_, err = svc.Register(context.Background(), "Mallory", "a@x.com", goodPassword)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second Register() error = %v, want ErrEmailTaken", err)
	}
	if got := st.records[first.ID].user.Name; got != "Alice" {
		t.Errorf("first record mutated: name = %q", got)
	}
}

func TestRegisterNotifierFailure(t *testing.T) {
	svc, st, notifier := newTestService(t, Config{})
	notifier.fail = true

	_, err := svc.Register(context.Background(), "Alice", "a@x.com", goodPassword)
	if !errors.Is(err, ErrNotifyFailed) {
		t.Fatalf("Register() error = %v, want ErrNotifyFailed", err)
	}
	if len(st.records) != 0 {
		t.Error("user record not removed after failed delivery")
	}
}

func TestVerifyOTP(t *testing.T) {
	svc, st, notifier := newTestService(t, Config{})

	user, err := svc.Register(context.Background(), "Alice", "a@x.com", goodPassword)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	code := notifier.codes[0]

	if _, err := svc.VerifyOTP(context.Background(), "a@x.com", "0000"); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("VerifyOTP(wrong code) error = %v, want ErrInvalidOTP", err)
	}
	if _, err := svc.VerifyOTP(context.Background(), "nobody@x.com", code); !errors.Is(err, ErrNotFound) {
		t.Errorf("VerifyOTP(unknown email) error = %v, want ErrNotFound", err)
	}

	got, err := svc.VerifyOTP(context.Background(), "a@x.com", code)
	if err != nil {
		t.Fatalf("VerifyOTP() error = %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("VerifyOTP() user = %v, want %v", got.ID, user.ID)
	}
	if st.records[user.ID].otp != nil {
		t.Error("otp not cleared after successful verification")
	}

	if _, err := svc.VerifyOTP(context.Background(), "a@x.com", code); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("VerifyOTP(replay) error = %v, want ErrInvalidOTP", err)
	}
}

func TestVerifyOTPExpired(t *testing.T) {
	svc, _, notifier := newTestService(t, Config{})

	_, err := svc.Register(context.Background(), "Alice", "a@x.com", goodPassword)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	code := notifier.codes[0]

	svc.now = func() time.Time { return time.Now().Add(11 * time.Minute) }
	if _, err := svc.VerifyOTP(context.Background(), "a@x.com", code); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("VerifyOTP(expired) error = %v, want ErrInvalidOTP", err)
	}
}

func TestResendOTP(t *testing.T) {
	svc, st, notifier := newTestService(t, Config{})

	user, err := svc.Register(context.Background(), "Alice", "a@x.com", goodPassword)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	// force a distinct code so the old-code assertion below can't collide
	st.records[user.ID].otp.Code = "xxxx"
	oldCode := "xxxx"

	if err := svc.ResendOTP(context.Background(), "a@x.com"); err != nil {
		t.Fatalf("ResendOTP() error = %v", err)
	}
	newCode := notifier.codes[len(notifier.codes)-1]

	if _, err := svc.VerifyOTP(context.Background(), "a@x.com", oldCode); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("VerifyOTP(old code) error = %v, want ErrInvalidOTP", err)
	}
	if _, err := svc.VerifyOTP(context.Background(), "a@x.com", newCode); err != nil {
		t.Errorf("VerifyOTP(new code) error = %v", err)
	}

	if err := svc.ResendOTP(context.Background(), "nobody@x.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ResendOTP(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestResendOTPNotifierFailure(t *testing.T) {
	svc, st, notifier := newTestService(t, Config{})

	user, err := svc.Register(context.Background(), "Alice", "a@x.com", goodPassword)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	notifier.fail = true
	if err := svc.ResendOTP(context.Background(), "a@x.com"); !errors.Is(err, ErrNotifyFailed) {
		t.Fatalf("ResendOTP() error = %v, want ErrNotifyFailed", err)
	}
	if st.records[user.ID].otp != nil {
		t.Error("stale otp left behind after failed delivery")
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService(t, Config{})

	if _, err := svc.Register(context.Background(), "Alice", "a@x.com", goodPassword); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, err := svc.Login(context.Background(), "a@x.com", goodPassword)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Email != "a@x.com" {
		t.Errorf("Login() email = %q", user.Email)
	}

	_, errWrongPassword := svc.Login(context.Background(), "a@x.com", "Wrong1!pass")
	_, errUnknownEmail := svc.Login(context.Background(), "nobody@x.com", goodPassword)
	if !errors.Is(errWrongPassword, ErrInvalidCredentials) {
		t.Errorf("Login(wrong password) error = %v, want ErrInvalidCredentials", errWrongPassword)
	}
	if !errors.Is(errUnknownEmail, ErrInvalidCredentials) {
		t.Errorf("Login(unknown email) error = %v, want ErrInvalidCredentials", errUnknownEmail)
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Error("login failures are distinguishable")
	}
}

func TestUpdate(t *testing.T) {
	svc, st, _ := newTestService(t, Config{})

	user, err := svc.Register(context.Background(), "Alice", "a@x.com", goodPassword)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	oldHash := st.records[user.ID].secret.PasswordHash

	if _, err := svc.Update(context.Background(), user.ID, "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Update(empty) error = %v, want ErrInvalidInput", err)
	}

	updated, err := svc.Update(context.Background(), user.ID, "", "NewSecret2!")
	if err != nil {
		t.Fatalf("Update(password) error = %v", err)
	}
	if updated.Name != "Alice" {
		t.Errorf("Update(password) changed name to %q", updated.Name)
	}
	if bytes.Equal(st.records[user.ID].secret.PasswordHash, oldHash) {
		t.Error("password not rehashed")
	}

	if _, err := svc.Update(context.Background(), uuid.New(), "Bob", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(unknown id) error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	svc, _, notifier := newTestService(t, Config{Mode: ModeSession})

	if err := svc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(unknown id) error = %v, want ErrNotFound", err)
	}

	user, err := svc.Register(context.Background(), "Alice", "a@x.com", goodPassword)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := svc.VerifyOTP(context.Background(), "a@x.com", notifier.codes[0]); err != nil {
		t.Fatalf("VerifyOTP() error = %v", err)
	}
	cookie, err := svc.Issue(user, "localhost")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := svc.Auth(context.Background(), cookie.Value); err != nil {
		t.Fatalf("Auth() before delete error = %v", err)
	}

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Auth(context.Background(), cookie.Value); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("Auth() after delete error = %v, want ErrNotAuthorized", err)
	}
}

func TestIssueAuthToken(t *testing.T) {
	svc, _, _ := newTestService(t, Config{Mode: ModeToken, Token: "test-secret", Expiration: "1h"})

	user, err := svc.Register(context.Background(), "Alice", "a@x.com", goodPassword)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	cookie, err := svc.Issue(user, "localhost")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if cookie.Name != "token" {
		t.Errorf("cookie name = %q, want token", cookie.Name)
	}

	got, err := svc.Auth(context.Background(), cookie.Value)
	if err != nil {
		t.Fatalf("Auth() error = %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("Auth() user = %v, want %v", got.ID, user.ID)
	}

	if _, err := svc.Auth(context.Background(), ""); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("Auth(empty) error = %v, want ErrNotAuthorized", err)
	}
	if _, err := svc.Auth(context.Background(), "garbage"); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("Auth(garbage) error = %v, want ErrNotAuthorized", err)
	}
}

func TestAdminBootstrap(t *testing.T) {
	cfg := Config{AdminEmail: "root@localhost", AdminPassword: "Root1234!", Expiration: "24h"}
	st := newMemStorage()
	notifier := &fakeNotifier{}

	svc, err := New(context.Background(), cfg, st, notifier)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	admin, err := svc.Login(context.Background(), "root@localhost", "Root1234!")
	if err != nil {
		t.Fatalf("Login(admin) error = %v", err)
	}
	if !admin.IsAdmin() {
		t.Error("bootstrapped account is not admin")
	}

	// second start must not create a duplicate
	if _, err := New(context.Background(), cfg, st, notifier); err != nil {
		t.Fatalf("second New() error = %v", err)
	}
	if len(st.records) != 1 {
		t.Errorf("admin records = %d, want 1", len(st.records))
	}
}
