// internal/netconn/netconn.go
//
// Package netconn wraps the single plain-or-TLS socket the crawl
// engine holds at a time. It resolves DNS itself rather than letting
// net.Dial do it implicitly, so that Open can apply the "first IPv4
// result" rule explicitly and report a distinct error for resolution
// failure versus connection failure.
package netconn

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"sync"
	"time"
)

// tlsInitOnce marks where a process-wide one-shot TLS library
// initialisation step would go. crypto/tls needs no such step, so this
// is a no-op: an environment pulling in a managed TLS library would
// hang its setup here instead of doing it per-connection.
var tlsInitOnce sync.Once

func ensureTLSInit() {
	tlsInitOnce.Do(func() {})
}

// Connection is a single TCP or TLS socket to one host, with enough
// memory of its own origin to support a later Reconnect to the
// primary host rather than wherever a redirect last pointed.
type Connection struct {
	primaryHost string
	host        string
	secure      bool
	timeout     time.Duration
	conn        net.Conn
}

// Open resolves host, connects to port 443 (secure) or 80, and
// performs a TLS handshake lazily on first I/O if secure is set
// (crypto/tls.Client defers the handshake itself, matching the
// "handshake occurs implicitly on first I/O" semantics).
func Open(host string, secure bool, timeout time.Duration) (*Connection, error) {
	c := &Connection{primaryHost: host, host: host, secure: secure, timeout: timeout}
	if err := c.dial(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Connection) dial() error {
	port := "80"
	if c.secure {
		port = "443"
	}

	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", c.host)
	if err != nil || len(ips) == 0 {
		return fmt.Errorf("netconn: resolve %s: %w", c.host, err)
	}
	addr := net.JoinHostPort(ips[0].String(), port)

	dialer := net.Dialer{Timeout: c.timeout}
	raw, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("netconn: dial %s: %w", addr, err)
	}

	if c.secure {
		ensureTLSInit()
		c.conn = tls.Client(raw, &tls.Config{
			ServerName: c.host,
			MinVersion: tls.VersionTLS12,
		})
		return nil
	}

	c.conn = raw
	return nil
}

// Close tears down the underlying socket.
func (c *Connection) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// Reconnect closes the current socket and re-opens against
// primaryHost, not whatever host the connection was last redirected
// to, so the engine can recover the seed origin after a bad redirect.
func (c *Connection) Reconnect() error {
	c.Close()
	c.host = c.primaryHost
	return c.dial()
}

// UpgradeToTLS closes the current socket and re-opens with secure set,
// preserving host. Used on an opportunistic https:// redirect.
func (c *Connection) UpgradeToTLS() error {
	c.Close()
	c.secure = true
	return c.dial()
}

// Send writes p in full to the connection.
func (c *Connection) Send(p []byte) (int, error) {
	if c.conn == nil {
		return 0, fmt.Errorf("netconn: send on closed connection")
	}
	return c.conn.Write(p)
}

// Recv reads into p, returning however many bytes are available.
func (c *Connection) Recv(p []byte) (int, error) {
	if c.conn == nil {
		return 0, fmt.Errorf("netconn: recv on closed connection")
	}
	return c.conn.Read(p)
}

// Host returns the connection's current (possibly redirected) host.
func (c *Connection) Host() string { return c.host }

// PrimaryHost returns the host Reconnect returns to.
func (c *Connection) PrimaryHost() string { return c.primaryHost }

// Secure reports whether the connection is TLS-wrapped.
func (c *Connection) Secure() bool { return c.secure }

// SetHost updates the connection's current host without reconnecting.
// A later Reconnect resets it to the primary host.
func (c *Connection) SetHost(host string) { c.host = host }
