// Package netx classifies transport failures and tidies HTTP responses.
package netx

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
)

// IsTransportError reports whether err means the request never produced an
// HTTP response: dial/DNS failures, resets, timeouts and expired deadlines.
// Cancellation by the caller is not a transport error.
func IsTransportError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// DrainAndClose discards what is left of the body so the connection can be
// reused, then closes it.
func DrainAndClose(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}

// Download performs a GET on rawURL and streams the body into w.
func Download(ctx context.Context, hc *http.Client, rawURL string, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer DrainAndClose(resp)

	if resp.StatusCode != http.StatusOK {
		return 0, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return io.Copy(w, resp.Body)
}

// StatusError is returned by Download for non-200 responses.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "download failed: " + e.Status
}
