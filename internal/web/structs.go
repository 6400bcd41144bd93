package web

import (
	"errors"
	"regexp"

	authservice "foodserver/auth/service"

	"github.com/gofiber/fiber/v2"
)

type signupRequest struct {
	name     string
	email    string
	password string
}

func parseSignupRequest(ctx *fiber.Ctx) (signupRequest, error) {
	var err error
	name := ctx.FormValue("name", "")
	if name == "" {
		err = errors.Join(err, errors.New("name is required"))
	}
	email := ctx.FormValue("email", "")
	err = errors.Join(err, validateEmail(email))
	password := ctx.FormValue("password", "")
	err = errors.Join(err, authservice.ValidatePassword(password))
	if err != nil {
		return signupRequest{}, err
	}
	return signupRequest{
		name:     name,
		email:    email,
		password: password,
	}, nil
}

type signInRequest struct {
	email    string
	password string
}

func parseSignInRequest(ctx *fiber.Ctx) (signInRequest, error) {
	var err error
	email := ctx.FormValue("email", "")
	err = errors.Join(err, validateEmail(email))
	password := ctx.FormValue("password", "")
	if password == "" {
		err = errors.Join(err, errors.New("password is required"))
	}
	if err != nil {
		return signInRequest{}, err
	}
	return signInRequest{
		email:    email,
		password: password,
	}, nil
}

type verifyRequest struct {
	email string
	otp   string
}

// parseVerifyRequest accepts form fields and falls back to query parameters,
// since the signup flow redirects to a URL carrying the email.
func parseVerifyRequest(ctx *fiber.Ctx) (verifyRequest, error) {
	email := ctx.FormValue("email", "")
	if email == "" {
		email = ctx.Query("email", "")
	}
	code := ctx.FormValue("otp", "")
	if code == "" {
		code = ctx.Query("otp", "")
	}
	var err error
	if email == "" {
		err = errors.Join(err, errors.New("email is required"))
	}
	if code == "" {
		err = errors.Join(err, errors.New("otp is required"))
	}
	if err != nil {
		return verifyRequest{}, err
	}
	return verifyRequest{
		email: email,
		otp:   code,
	}, nil
}

type updateRequest struct {
	name     string
	password string
}

func parseUpdateRequest(ctx *fiber.Ctx) (updateRequest, error) {
	name := ctx.FormValue("name", "")
	password := ctx.FormValue("password", "")
	if name == "" && password == "" {
		return updateRequest{}, errors.New("no data provided for update")
	}
	if password != "" {
		if err := authservice.ValidatePassword(password); err != nil {
			return updateRequest{}, err
		}
	}
	return updateRequest{
		name:     name,
		password: password,
	}, nil
}

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegexp.MatchString(email) {
		return errors.New("email is not valid")
	}
	return nil
}
