// Package validate holds the few client-side checks worth doing before a
// request goes out. The API owns real validation; these only catch input that
// could never be right, so the operator is not bounced off the server for a
// typo.
package validate

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

func Credentials(username, password string) error {
	var errs []error
	if username == "" {
		errs = append(errs, errors.New("empty username"))
	}
	if password == "" {
		errs = append(errs, errors.New("empty password"))
	}
	return errors.Join(errs...)
}

// Date checks the YYYY-MM-DD form the experience dates use on the wire.
func Date(s string) error {
	if s == "" {
		return errors.New("empty date")
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date %q; expected YYYY-MM-DD", s)
	}
	return nil
}

// URL accepts the empty string; optional link fields stay optional.
func URL(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid url %q", s)
	}
	return nil
}
