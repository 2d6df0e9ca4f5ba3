package models

// User is the active identity. Exactly one User exists per store; it is
// replaced wholesale on login, register and logout, never merged.
type User struct {
	Name string   `json:"name"`
	Role RoleType `json:"role"`
}

// GuestUser is the identity the store falls back to when nothing is
// persisted and the one restored by logout.
func GuestUser() User {
	return User{Name: "Guest", Role: RoleVisitor}
}
