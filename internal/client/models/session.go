package models

// User is the admin record returned by the backend on login and persisted
// next to the token.
type User struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// DisplayName picks the most readable identifier available.
func (u User) DisplayName() string {
	switch {
	case u.Name != "":
		return u.Name
	case u.Username != "":
		return u.Username
	case u.Email != "":
		return u.Email
	default:
		return "admin"
	}
}

// Session pairs a bearer token with its user. Both are set or both are
// absent; a zero Session means "no session".
type Session struct {
	Token string
	User  *User
}

// Empty reports whether the session holds no credentials.
func (s Session) Empty() bool {
	return s.Token == "" && s.User == nil
}

// Complete reports whether both halves of the pair are present.
func (s Session) Complete() bool {
	return s.Token != "" && s.User != nil
}
