package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// Gateway maps one collection resource onto the API's CRUD routes. R is the
// stored shape (with server-assigned id), D the create/update payload without
// one. It holds no state of its own; the cached list view lives in the
// controllers, never here.
type Gateway[R any, D any] struct {
	client   *Client
	resource string
	path     string
}

func NewGateway[R any, D any](client *Client, resource, path string) *Gateway[R, D] {
	return &Gateway[R, D]{
		client:   client,
		resource: resource,
		path:     path,
	}
}

func (g *Gateway[R, D]) List(ctx context.Context) ([]R, error) {
	res, err := g.client.Do(ctx, http.MethodGet, g.path, nil)
	if err != nil {
		return nil, g.classify("list", err)
	}
	defer res.Body.Close()

	var items []R
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return nil, g.classify("list", err)
	}
	return items, nil
}

// Create posts a draft; the response carries the server-assigned id and is the
// sole source of it.
func (g *Gateway[R, D]) Create(ctx context.Context, draft D) (R, error) {
	var created R
	res, err := g.client.Do(ctx, http.MethodPost, g.path, draft)
	if err != nil {
		return created, g.classify("create", err)
	}
	defer res.Body.Close()

	if err := decodeOrEmpty(res, &created); err != nil {
		return created, g.classify("create", err)
	}
	return created, nil
}

func (g *Gateway[R, D]) Update(ctx context.Context, id int, draft D) (R, error) {
	var updated R
	res, err := g.client.Do(ctx, http.MethodPut, g.path+"/"+strconv.Itoa(id), draft)
	if err != nil {
		return updated, g.classify("update", err)
	}
	defer res.Body.Close()

	if err := decodeOrEmpty(res, &updated); err != nil {
		return updated, g.classify("update", err)
	}
	return updated, nil
}

func (g *Gateway[R, D]) Delete(ctx context.Context, id int) error {
	res, err := g.client.Do(ctx, http.MethodDelete, g.path+"/"+strconv.Itoa(id), nil)
	if err != nil {
		return g.classify("delete", err)
	}
	res.Body.Close()
	return nil
}

func (g *Gateway[R, D]) classify(op string, err error) error {
	var he *HTTPError
	if errors.As(err, &he) && he.Status == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", op, g.resource, ErrNotFound)
	}
	return &RequestError{Op: op, Resource: g.resource, Err: err}
}

// SingletonGateway maps the profile resource, whose identity is its fixed path
// and whose existence is signalled by 404 on GET.
type SingletonGateway[R any] struct {
	client   *Client
	resource string
	path     string
}

func NewSingletonGateway[R any](client *Client, resource, path string) *SingletonGateway[R] {
	return &SingletonGateway[R]{
		client:   client,
		resource: resource,
		path:     path,
	}
}

func (g *SingletonGateway[R]) Get(ctx context.Context) (R, error) {
	var value R
	res, err := g.client.Do(ctx, http.MethodGet, g.path, nil)
	if err != nil {
		return value, g.classify("get", err)
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&value); err != nil {
		return value, g.classify("get", err)
	}
	return value, nil
}

func (g *SingletonGateway[R]) Create(ctx context.Context, value R) (R, error) {
	res, err := g.client.Do(ctx, http.MethodPost, g.path, value)
	if err != nil {
		var zero R
		return zero, g.classify("create", err)
	}
	defer res.Body.Close()

	// The API answers creation with an empty body; the submitted value is
	// trusted as the new canonical state.
	if err := decodeOrEmpty(res, &value); err != nil {
		var zero R
		return zero, g.classify("create", err)
	}
	return value, nil
}

func (g *SingletonGateway[R]) Update(ctx context.Context, value R) (R, error) {
	res, err := g.client.Do(ctx, http.MethodPut, g.path, value)
	if err != nil {
		var zero R
		return zero, g.classify("update", err)
	}
	defer res.Body.Close()

	if err := decodeOrEmpty(res, &value); err != nil {
		var zero R
		return zero, g.classify("update", err)
	}
	return value, nil
}

func (g *SingletonGateway[R]) classify(op string, err error) error {
	var he *HTTPError
	if errors.As(err, &he) && he.Status == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", op, g.resource, ErrNotFound)
	}
	return &RequestError{Op: op, Resource: g.resource, Err: err}
}

// decodeOrEmpty fills v from the response body when the server sent one and
// leaves v alone on an empty body, so write endpoints may answer either way.
func decodeOrEmpty(res *http.Response, v any) error {
	err := json.NewDecoder(res.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
