package entity

// Role is a rank in the staff hierarchy. Higher values outrank lower ones,
// so privilege checks compare ordinals.
type Role int32

const (
	RoleCustomer Role = 1
	RoleWaiter   Role = 2
	RoleChef     Role = 3
	RoleCoOwner  Role = 4
	RoleOwner    Role = 5
)

// Valid reports whether r is one of the defined levels.
func (r Role) Valid() bool {
	return r >= RoleCustomer && r <= RoleOwner
}

// AtLeast reports whether r outranks or equals required.
func (r Role) AtLeast(required Role) bool {
	return r >= required
}

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleWaiter:
		return "waiter"
	case RoleChef:
		return "chef"
	case RoleCoOwner:
		return "coOwner"
	case RoleOwner:
		return "owner"
	default:
		return "unknown"
	}
}

type User struct {
	Base
	Username     string `db:"username"`
	PasswordHash string `db:"password"`
	Role         Role   `db:"role"`
}
