package auth

// Identity is the authenticated caller, extracted from a verified token.
type Identity struct {
	UserID   string
	Username string
	Roles    []string
}

func (id Identity) HasRole(role string) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (id Identity) IsAdmin() bool {
	return id.HasRole("Admin")
}
