package credential

import "errors"

// Credential is the operator's login pair. At most one exists at a time; it is
// overwritten whole on login and removed whole on logout or auth failure.
type Credential struct {
	Username string
	Password string
}

var ErrNoCredentials = errors.New("no stored credentials")

// Store owns the persisted credential. Nothing else writes it: the login flow
// saves, the session guard clears, everyone else only reads through the request
// layer. A Store never touches the network.
type Store interface {
	Save(cred Credential) error
	Load() (Credential, error)
	Clear() error
}
