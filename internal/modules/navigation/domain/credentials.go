package domain

import "crypto/subtle"

// Credentials is the single client-side admin account. It guards a mock
// screen and is not a security boundary.
type Credentials struct {
	Username string
	Password string
}

var DefaultCredentials = Credentials{Username: "admin", Password: "password"}

func (c Credentials) Match(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password))
	return u&p == 1
}
