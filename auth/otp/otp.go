// Package otp generates short numeric email-verification codes.
package otp

import (
	"math/rand"
	"strconv"
)

const (
	min = 1000
	max = 10000
)

// Generate returns a random 4-digit code. The code only confirms control of
// a mailbox within a short window, so math/rand is enough here.
func Generate() string {
	return strconv.Itoa(min + rand.Intn(max-min))
}
