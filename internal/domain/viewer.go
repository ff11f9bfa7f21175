package domain

// Viewer is the identity of the current browser session. An anonymous
// viewer has an empty ID.
type Viewer struct {
	ID         string
	Avatar     string
	HasWallet  bool
	DidRequest bool
}

// IsUser reports whether the viewer is looking at their own page.
func (v Viewer) IsUser(userID string) bool {
	return v.ID == userID
}

// Authenticated reports whether the session carries a signed-in user.
func (v Viewer) Authenticated() bool {
	return v.ID != ""
}
