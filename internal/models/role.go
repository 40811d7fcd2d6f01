package models

// Role tags a principal and the tokens issued to it.
type Role string

const (
	RoleHost   Role = "host"   // car owner
	RoleClient Role = "client" // renter
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleHost || r == RoleClient
}

func (r Role) String() string {
	return string(r)
}
