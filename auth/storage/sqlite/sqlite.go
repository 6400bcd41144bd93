package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"foodserver/auth/gen/model"
	"foodserver/auth/gen/table"
	"foodserver/auth/storage"
	"foodserver/auth/users"
	"foodserver/internal/config"
	migrations "foodserver/internal/migrate"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "auth-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.Auth.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = migrations.UpAuthDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("auth storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) CreateUser(ctx context.Context, user users.User, secret users.Secret, otp *users.OTP) error {
	dbUser := model.Users{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: bytesToHex(secret.PasswordHash),
		PasswordSalt: bytesToHex(secret.Salt),
		Role:         string(user.Role),
		CreatedAt:    time.Now(),
	}
	if otp != nil {
		code := otp.Code
		expires := otp.ExpiresAt
		dbUser.Otp = &code
		dbUser.OtpExpires = &expires
	}
	_, err := table.Users.INSERT(table.Users.AllColumns).MODEL(dbUser).ExecContext(ctx, s.db)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return storage.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(
			table.Users.PasswordHash,
			table.Users.PasswordSalt,
		)).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUserToModel(dbUser)
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (users.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(
			table.Users.PasswordHash,
			table.Users.PasswordSalt,
		)).
		FROM(table.Users).
		WHERE(table.Users.Email.EQ(sqlite.String(email))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUserToModel(dbUser)
}

func (s *Storage) GetUserSecret(ctx context.Context, user users.User) (users.Secret, error) {
	var where sqlite.BoolExpression
	switch {
	case user.ID != uuid.Nil:
		where = table.Users.ID.EQ(sqlite.UUID(user.ID))
	case user.Email != "":
		where = table.Users.Email.EQ(sqlite.String(user.Email))
	default:
		return users.Secret{}, errors.New("empty user")
	}

	var dbUser model.Users
	err := table.Users.
		SELECT(
			table.Users.PasswordHash,
			table.Users.PasswordSalt,
		).
		FROM(table.Users).
		WHERE(where).QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.Secret{}, sql.ErrNoRows
		}
		return users.Secret{}, err
	}
	hash, err := hexToBytes(dbUser.PasswordHash)
	if err != nil {
		return users.Secret{}, err
	}
	salt, err := hexToBytes(dbUser.PasswordSalt)
	if err != nil {
		return users.Secret{}, err
	}
	return users.Secret{
		PasswordHash: hash,
		Salt:         salt,
	}, nil
}

func (s *Storage) SignIn(ctx context.Context, email string, passwordHash []byte) (users.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns.Except(
			table.Users.PasswordHash,
			table.Users.PasswordSalt,
		)).
		FROM(table.Users).
		WHERE(
			table.Users.Email.EQ(sqlite.String(email)).
				AND(table.Users.PasswordHash.EQ(sqlite.String(bytesToHex(passwordHash)))),
		).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUserToModel(dbUser)
}

func (s *Storage) GetOTP(ctx context.Context, email string) (*users.OTP, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(
			table.Users.Otp,
			table.Users.OtpExpires,
		).
		FROM(table.Users).
		WHERE(table.Users.Email.EQ(sqlite.String(email))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	if dbUser.Otp == nil || dbUser.OtpExpires == nil {
		return nil, nil
	}
	return &users.OTP{
		Code:      *dbUser.Otp,
		ExpiresAt: *dbUser.OtpExpires,
	}, nil
}

func (s *Storage) SetOTP(ctx context.Context, id uuid.UUID, otp *users.OTP) error {
	var dbUser model.Users
	if otp != nil {
		code := otp.Code
		expires := otp.ExpiresAt
		dbUser.Otp = &code
		dbUser.OtpExpires = &expires
	}
	res, err := table.Users.
		UPDATE(table.Users.Otp, table.Users.OtpExpires).
		MODEL(dbUser).
		WHERE(table.Users.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Storage) UpdateUser(ctx context.Context, id uuid.UUID, name string, secret *users.Secret) error {
	columns := sqlite.ColumnList{}
	var dbUser model.Users
	if name != "" {
		columns = append(columns, table.Users.Name)
		dbUser.Name = name
	}
	if secret != nil {
		columns = append(columns, table.Users.PasswordHash, table.Users.PasswordSalt)
		dbUser.PasswordHash = bytesToHex(secret.PasswordHash)
		dbUser.PasswordSalt = bytesToHex(secret.Salt)
	}
	if len(columns) == 0 {
		return errors.New("nothing to update")
	}
	res, err := table.Users.
		UPDATE(columns).
		MODEL(dbUser).
		WHERE(table.Users.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Storage) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := table.Users.
		DELETE().
		WHERE(table.Users.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func convertUserToModel(user model.Users) (users.User, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return users.User{}, err
	}
	return users.User{
		ID:           id,
		Name:         user.Name,
		Email:        user.Email,
		Role:         users.Role(user.Role),
		RegisteredAt: user.CreatedAt,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func bytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

func hexToBytes(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
