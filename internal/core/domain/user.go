package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// ValidRole reports whether r is one of the closed role set.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleClient
}

// User models an account able to authenticate. The password hash never
// leaves the server: it is excluded from every JSON response.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	FullName     string    `json:"full_name,omitempty" bson:"full_name,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Role         string    `json:"role" bson:"role"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Identity is the verified principal attached to a request after the
// authentication middleware has validated the token and re-checked the
// account against the store. It is authoritative for the rest of the request.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the identity carries the admin role. The zero
// Identity (anonymous request) is never an admin.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
