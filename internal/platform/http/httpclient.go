package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client for outbound calls such as the S3 media backend.
//
// http.DefaultClient has no timeout, so callers always go through this.
// Proxy settings come from HTTP_PROXY/HTTPS_PROXY.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
