package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"foodserver/auth/otp"
	"foodserver/auth/session"
	"foodserver/auth/storage"
	"foodserver/auth/users"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrInvalidCredentials = errors.New("incorrect credentials")
	ErrNotAuthorized      = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrNotifyFailed       = errors.New("failed to send verification email")
)

const otpTTL = 10 * time.Minute

// Notifier delivers a verification code to an email address.
type Notifier interface {
	SendOTP(email string, code string) error
}

type Service struct {
	storage  storage.AuthStorage
	notifier Notifier
	sessions *session.Store
	cfg      Config

	now func() time.Time
}

func New(ctx context.Context, cfg Config, st storage.AuthStorage, notifier Notifier) (*Service, error) {
	sessionTTL := time.Hour
	if cfg.SessionTTL != "" {
		ttl, err := time.ParseDuration(cfg.SessionTTL)
		if err != nil {
			return nil, err
		}
		sessionTTL = ttl
	}
	s := Service{
		storage:  st,
		notifier: notifier,
		sessions: session.New(sessionTTL),
		cfg:      cfg,
		now:      time.Now,
	}
	if cfg.AdminEmail != "" {
		_, err := s.storage.GetUserByEmail(ctx, cfg.AdminEmail)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				return nil, err
			}
			salt, err := randomSalt()
			if err != nil {
				return nil, err
			}
			secret := generateSecret(cfg.AdminPassword, cfg.PasswordPepper, salt)
			err = s.storage.CreateUser(ctx, users.User{
				ID:    uuid.New(),
				Name:  "admin",
				Email: cfg.AdminEmail,
				Role:  users.RoleAdmin,
			}, secret, nil)
			if err != nil {
				return nil, err
			}
		}
	}
	return &s, nil
}

// Register creates a pending-verification account and mails the OTP. If the
// mail cannot be sent the created record is removed again so the email stays
// free for another attempt.
func (s *Service) Register(ctx context.Context, name, email, password string) (users.User, error) {
	if name == "" || email == "" || password == "" {
		return users.User{}, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}
	if err := ValidatePassword(password); err != nil {
		return users.User{}, err
	}
	_, err := s.storage.GetUserByEmail(ctx, email)
	if err == nil {
		return users.User{}, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return users.User{}, err
	}

	salt, err := randomSalt()
	if err != nil {
		return users.User{}, err
	}
	secret := generateSecret(password, s.cfg.PasswordPepper, salt)
	user := users.User{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Role:  users.RoleUser,
	}
	code := users.OTP{
		Code:      otp.Generate(),
		ExpiresAt: s.now().Add(otpTTL),
	}
	err = s.storage.CreateUser(ctx, user, secret, &code)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return users.User{}, ErrEmailTaken
		}
		return users.User{}, err
	}
	if err := s.notifier.SendOTP(user.Email, code.Code); err != nil {
		if delErr := s.storage.DeleteUser(ctx, user.ID); delErr != nil {
			return users.User{}, errors.Join(ErrNotifyFailed, err, delErr)
		}
		return users.User{}, errors.Join(ErrNotifyFailed, err)
	}
	return user, nil
}

// VerifyOTP checks the submitted code against the stored one. A matching but
// expired code is rejected the same way as a wrong one. On success both OTP
// fields are cleared so the code cannot be replayed.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) (users.User, error) {
	if email == "" || code == "" {
		return users.User{}, fmt.Errorf("%w: email and OTP are required", ErrInvalidInput)
	}
	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrNotFound
		}
		return users.User{}, err
	}
	stored, err := s.storage.GetOTP(ctx, email)
	if err != nil {
		return users.User{}, err
	}
	if stored == nil || stored.Code != code || s.now().After(stored.ExpiresAt) {
		return users.User{}, ErrInvalidOTP
	}
	if err := s.storage.SetOTP(ctx, user.ID, nil); err != nil {
		return users.User{}, err
	}
	return user, nil
}

// ResendOTP stores a fresh code before attempting delivery; a failed send
// clears it again so no undeliverable code stays valid.
func (s *Service) ResendOTP(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	code := users.OTP{
		Code:      otp.Generate(),
		ExpiresAt: s.now().Add(otpTTL),
	}
	if err := s.storage.SetOTP(ctx, user.ID, &code); err != nil {
		return err
	}
	if err := s.notifier.SendOTP(user.Email, code.Code); err != nil {
		if clearErr := s.storage.SetOTP(ctx, user.ID, nil); clearErr != nil {
			return errors.Join(ErrNotifyFailed, err, clearErr)
		}
		return errors.Join(ErrNotifyFailed, err)
	}
	return nil
}

// Login deliberately reports the same error for an unknown email and a wrong
// password.
func (s *Service) Login(ctx context.Context, email, password string) (users.User, error) {
	userSecret, err := s.storage.GetUserSecret(ctx, users.User{Email: email})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrInvalidCredentials
		}
		return users.User{}, err
	}
	secret := generateSecret(password, s.cfg.PasswordPepper, userSecret.Salt)
	if !bytes.Equal(secret.PasswordHash, userSecret.PasswordHash) {
		return users.User{}, ErrInvalidCredentials
	}
	user, err := s.storage.SignIn(ctx, email, secret.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrInvalidCredentials
		}
		return users.User{}, err
	}
	return user, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, name, password string) (users.User, error) {
	if name == "" && password == "" {
		return users.User{}, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	var secret *users.Secret
	if password != "" {
		if err := ValidatePassword(password); err != nil {
			return users.User{}, err
		}
		salt, err := randomSalt()
		if err != nil {
			return users.User{}, err
		}
		newSecret := generateSecret(password, s.cfg.PasswordPepper, salt)
		secret = &newSecret
	}
	if err := s.storage.UpdateUser(ctx, id, name, secret); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrNotFound
		}
		return users.User{}, err
	}
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return users.User{}, err
	}
	return user, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.storage.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.sessions.DeleteUser(id)
	return nil
}

// CookieName returns the cookie carrying the credential for the configured
// strategy.
func (s *Service) CookieName() string {
	if s.cfg.Mode == ModeSession {
		return "sid"
	}
	return "token"
}

// Issue establishes the configured credential for the user and returns the
// cookie to attach to the response. The cookie never carries password or OTP
// material.
func (s *Service) Issue(user users.User, host string) (*fiber.Cookie, error) {
	if s.cfg.Mode == ModeSession {
		sess := s.sessions.Create(user)
		return &fiber.Cookie{
			Name:     s.CookieName(),
			Value:    sess.ID.String(),
			Path:     "/",
			Domain:   host,
			Expires:  sess.ExpiresAt,
			Secure:   s.cfg.Production,
			HTTPOnly: true,
		}, nil
	}
	return s.generateJWTCookie(user.ID, host)
}

func (s *Service) generateJWTCookie(userID uuid.UUID, host string) (*fiber.Cookie, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	expirationTime := s.now().Add(expiresIn)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  s.now().Unix(),
		Subject:   userID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     s.CookieName(),
		Value:    tokenString,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		Secure:   s.cfg.Production,
		HTTPOnly: true,
	}, nil
}

// Auth resolves the user behind the cookie value for the configured
// strategy.
func (s *Service) Auth(ctx context.Context, cookie string) (users.User, error) {
	if cookie == "" {
		return users.User{}, ErrNotAuthorized
	}
	if s.cfg.Mode == ModeSession {
		id, err := uuid.Parse(cookie)
		if err != nil {
			return users.User{}, ErrNotAuthorized
		}
		user, ok := s.sessions.Get(id)
		if !ok {
			return users.User{}, ErrNotAuthorized
		}
		return user, nil
	}
	user, err := s.getUserFromToken(ctx, cookie)
	if err != nil {
		return users.User{}, ErrNotAuthorized
	}
	return user, nil
}

// Logout destroys the server-side session if one exists. Token-mode logout
// is handled by clearing the cookie on the response.
func (s *Service) Logout(cookie string) {
	if s.cfg.Mode != ModeSession || cookie == "" {
		return
	}
	id, err := uuid.Parse(cookie)
	if err != nil {
		return
	}
	s.sessions.Delete(id)
}

func (s *Service) getUserFromToken(ctx context.Context, cookie string) (users.User, error) {
	token, err := jwt.ParseWithClaims(cookie, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Token), nil
	})
	if err != nil {
		ve := jwt.ValidationError{}
		if ok := errors.As(err, &ve); !ok {
			return users.User{}, err
		}
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return users.User{}, errors.New("bad request")
		} else if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return users.User{}, errors.New("token expired")
		}
		return users.User{}, err
	}
	if !token.Valid {
		return users.User{}, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*jwt.StandardClaims)
	if !ok {
		return users.User{}, errors.New("bad request")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return users.User{}, err
	}
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return users.User{}, err
	}
	return user, nil
}

var (
	passwordLetter  = regexp.MustCompile(`[A-Za-z]`)
	passwordDigit   = regexp.MustCompile(`\d`)
	passwordSpecial = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// ValidatePassword enforces the signup password policy: at least 8
// characters with at least one letter, one digit and one special character.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	if !passwordLetter.MatchString(password) ||
		!passwordDigit.MatchString(password) ||
		!passwordSpecial.MatchString(password) {
		return fmt.Errorf("%w: password must contain a letter, a digit and a special character", ErrInvalidInput)
	}
	return nil
}

func randomSalt() ([]byte, error) {
	salt := make([]byte, 8)
	_, err := rand.Read(salt)
	if err != nil {
		return nil, err
	}
	return salt, nil
}

func generateSecret(password string, pepper string, salt []byte) users.Secret {
	sha := sha256.New()
	sha.Write([]byte(pepper + password))

	sha.Write(salt)
	return users.Secret{
		PasswordHash: sha.Sum(nil),
		Salt:         salt,
	}
}
