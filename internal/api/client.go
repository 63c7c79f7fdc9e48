package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/duartecoelho/folioctl/internal/credential"
)

// Client is the single choke point for talking to the portfolio API. Every
// request goes out with Basic auth built from the credential store, or without
// an Authorization header when no pair is stored (public reads still work).
// The client never writes to the store; clearing on auth failure is the
// session guard's call, not the transport's.
type Client struct {
	base  *url.URL
	http  *http.Client
	creds credential.Store
}

func New(base *url.URL, httpClient *http.Client, creds credential.Store) *Client {
	return &Client{
		base:  base,
		http:  httpClient,
		creds: creds,
	}
}

// Do sends one request. body, when non-nil, is JSON-encoded. Non-2xx answers
// are returned as *HTTPError with the body drained; transport failures come
// back as-is. No retries.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
	}

	u := c.base.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	cred, err := c.creds.Load()
	switch {
	case err == nil:
		req.SetBasicAuth(cred.Username, cred.Password)
	case errors.Is(err, credential.ErrNoCredentials):
		// Anonymous request; some reads do not need auth.
	default:
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("transport failure")
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		content, _ := io.ReadAll(res.Body)
		res.Body.Close()
		log.Debug().Int("status", res.StatusCode).Str("method", method).Str("path", path).
			Bytes("response", content).Msg("request rejected")
		return nil, &HTTPError{Status: res.StatusCode, Body: string(content)}
	}

	return res, nil
}

// DoAs sends one request authenticated with an explicit pair, bypassing the
// store. The login flow uses it to test a candidate credential before saving.
func (c *Client) DoAs(ctx context.Context, method, path string, cred credential.Credential) (*http.Response, error) {
	u := c.base.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(cred.Username, cred.Password)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		content, _ := io.ReadAll(res.Body)
		res.Body.Close()
		return nil, &HTTPError{Status: res.StatusCode, Body: string(content)}
	}

	return res, nil
}
