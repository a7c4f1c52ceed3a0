package ports

// TokenStore persists the raw backend credential between console runs. It is
// the terminal analog of the browser's single localStorage key: one opaque
// string, written on login, read on every authenticated request, cleared on
// logout or detected expiry.
type TokenStore interface {
	// Save stores the token, overwriting any prior value.
	Save(token string) error
	// Read returns the stored token, or ("", false) when absent. It never
	// fails: an unreadable store is indistinguishable from an empty one.
	Read() (string, bool)
	// Clear removes the stored token. Idempotent.
	Clear() error
}
