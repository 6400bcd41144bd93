package service

const (
	// ModeToken issues a signed JWT in a cookie, verifiable without a
	// server-side lookup.
	ModeToken = "token"
	// ModeSession issues an opaque identifier referencing a server-side
	// session record.
	ModeSession = "session"
)

type Config struct {
	SqliteFile     string `toml:"sqlite_file"`
	Mode           string `toml:"mode"`
	Token          string `toml:"token"`
	Expiration     string `toml:"expiration"`
	SessionTTL     string `toml:"session_ttl"`
	AdminEmail     string `toml:"admin_email"`
	AdminPassword  string `toml:"admin_password"`
	PasswordPepper string `toml:"password_pepper"`

	// Production is copied from the server config and controls the Secure
	// attribute on issued cookies.
	Production bool `toml:"-"`
}
