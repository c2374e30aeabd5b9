package netutil

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestShouldRetry(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("bad request"), false},
		{"timeout", timeoutErr{}, true},
		{"wrapped timeout", fmt.Errorf("send: %w", timeoutErr{}), true},
		{"dial op", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, true},
		{"read op", &net.OpError{Op: "read", Err: errors.New("connection reset")}, false},
		{"url timeout", &url.Error{Op: "Post", URL: "https://api.telegram.org", Err: timeoutErr{}}, true},
		{"url permanent", &url.Error{Op: "Post", URL: "https://api.telegram.org", Err: errors.New("no such host")}, false},
	}
	for _, tc := range cases {
		if got := ShouldRetry(tc.err); got != tc.want {
			t.Errorf("%s: ShouldRetry = %v, want %v", tc.name, got, tc.want)
		}
	}
}
