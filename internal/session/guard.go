package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/duartecoelho/folioctl/internal/api"
	"github.com/duartecoelho/folioctl/internal/credential"
)

type Status int

const (
	StatusUnknown Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// ErrInvalidCredentials is returned by Login when the API rejects the pair.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Guard gates access to the management commands. Each Check probes the API
// once with the stored credentials; a rejected probe clears the store so a
// stale pair cannot keep bouncing off the server.
type Guard struct {
	client *api.Client
	creds  credential.Store
	status Status
}

func New(client *api.Client, creds credential.Store) *Guard {
	return &Guard{
		client: client,
		creds:  creds,
		status: StatusUnknown,
	}
}

func (g *Guard) Status() Status {
	return g.status
}

// Check runs the authenticated probe and settles the status. An auth-class
// rejection clears the credential store. Any other failure (network down,
// server error) returns the error and leaves the status unknown: a blip must
// not destroy a valid session.
func (g *Guard) Check(ctx context.Context) (Status, error) {
	res, err := g.client.Do(ctx, http.MethodGet, "/login", nil)
	if err == nil {
		res.Body.Close()
		g.status = StatusAuthenticated
		return g.status, nil
	}

	if api.IsAuthFailure(err) {
		log.Info().Msg("stored credentials rejected, clearing them")
		g.status = StatusUnauthenticated
		if clearErr := g.creds.Clear(); clearErr != nil {
			return g.status, clearErr
		}
		return g.status, nil
	}

	return g.status, err
}

// Login validates a candidate pair against POST /login and saves it only on
// success. A rejected pair leaves the store untouched.
func (g *Guard) Login(ctx context.Context, username, password string) error {
	cred := credential.Credential{Username: username, Password: password}
	res, err := g.client.DoAs(ctx, http.MethodPost, "/login", cred)
	if err != nil {
		if api.IsAuthFailure(err) {
			return ErrInvalidCredentials
		}
		return err
	}
	res.Body.Close()

	if err := g.creds.Save(cred); err != nil {
		return err
	}
	g.status = StatusAuthenticated
	return nil
}

func (g *Guard) Logout() error {
	g.status = StatusUnauthenticated
	return g.creds.Clear()
}
