package store

// Identity is the mock signed-in user. There is no credential behind it.
type Identity struct {
	Name string
	Role string
}

const mockRole = "Admin"

// Auth holds the current identity; nil means signed out.
type Auth struct {
	*Store[*Identity]
}

func NewAuth() *Auth {
	return &Auth{Store: New[*Identity](nil)}
}

// Login signs in as name with the fixed mock role.
func (a *Auth) Login(name string) {
	a.Set(&Identity{Name: name, Role: mockRole})
}

func (a *Auth) Logout() {
	a.Set(nil)
}

// User returns a copy of the current identity, or nil when signed out.
func (a *Auth) User() *Identity {
	id := a.Get()
	if id == nil {
		return nil
	}
	cp := *id
	return &cp
}

// SignedInAs is the navbar label for the current identity.
func (a *Auth) SignedInAs() string {
	if id := a.Get(); id != nil {
		return "Signed in as: " + id.Name
	}
	return "Guest"
}
