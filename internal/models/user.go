package models

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don’t expose hash
}

// Identity is the authenticated caller; Username is recorded as the timeline user.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
