// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

import "github.com/gravitational/trace"

// Wire cipher suite entry sizes. SSLv2-compatible ClientHellos use three
// byte entries whose leading byte is zero for TLS codes; only the trailing
// two bytes are ever compared.
const (
	cipherSuiteLenTLS   = 2
	cipherSuiteLenSSLv2 = 3
)

func wireSuiteAt(wire []byte, i, stride int) uint16 {
	off := i*stride + stride - cipherSuiteLenTLS
	return uint16(wire[off])<<8 | uint16(wire[off+1])
}

func wireContains(wire []byte, stride int, id uint16) bool {
	return wireIndex(wire, stride, id) >= 0
}

// wireIndex returns the index of the first wire entry matching id, or -1.
func wireIndex(wire []byte, stride int, id uint16) int {
	count := len(wire) / stride
	for i := 0; i < count; i++ {
		if wireSuiteAt(wire, i, stride) == id {
			return i
		}
	}
	return -1
}

// cipherSuiteMatchValid reports whether a suite the peer also offers can
// actually be used for the remainder of this connection. Every predicate is
// side-effect free; key-exchange configuration happens once, after the
// final selection.
func cipherSuiteMatchValid(conn *Conn, suite *CipherSuite) bool {
	// Never use TLS 1.3 ciphers on a pre-TLS 1.3 connection, and vice
	// versa.
	if (conn.Version >= VersionTLS13) != (suite.minVersion >= VersionTLS13) {
		return false
	}

	// Skip the suite if we don't have an available implementation.
	if !suite.available {
		return false
	}

	// Make sure the cipher is valid for the available certs.
	if !cipherSuiteValidForAuth(conn, suite) {
		return false
	}

	// TLS 1.3 does not include key exchange in cipher suites.
	if suite.minVersion < VersionTLS13 {
		if !suite.kex.connectionSupported(suite, conn) {
			return false
		}
	}

	// The server MUST ensure that it selects a compatible PSK (if any)
	// and cipher suite. See RFC 8446, Section 4.2.11.
	if conn.ChosenPSK != nil && suite.prfAlg != conn.ChosenPSK.HMACAlg {
		return false
	}

	return true
}

// negotiatedSuite walks the server preference list against the client wire
// list. Outside equal-preference groups the first legal match wins; inside
// a group the whole group is scanned and the match with the lowest client
// index wins. A legal match whose minimum version exceeds the connection's
// is remembered as a last resort so the caller can surface a precise
// protocol-version error upstream instead of a generic no-cipher one.
func (c *Conn) negotiatedSuite(wire []byte, stride int) *CipherSuite {
	policy := c.securityPolicy()

	inGroup := false
	bestClientIndex := len(wire) / stride
	var best, higherVersion *CipherSuite

	for _, entry := range policy.entries {
		switch entry.kind {
		case entryGroupStart:
			inGroup = true
			continue
		case entryGroupEnd:
			inGroup = false
			// Exiting a group locks in its winner, if any.
			if best != nil {
				return best
			}
			continue
		}

		ours := entry.suite
		clientIndex := wireIndex(wire, stride, ours.id)
		if clientIndex < 0 {
			continue
		}

		if !cipherSuiteMatchValid(c, ours) {
			continue
		}

		// Don't immediately choose a cipher the connection shouldn't be
		// able to support yet.
		if c.Version < ours.minVersion {
			if higherVersion == nil {
				higherVersion = ours
			}
			continue
		}

		if inGroup {
			// Client preference wins inside a group; keep scanning to
			// the group end.
			if clientIndex < bestClientIndex {
				bestClientIndex = clientIndex
				best = ours
			}
			continue
		}

		// Server preference wins outside groups.
		return ours
	}

	if best != nil {
		return best
	}
	return higherVersion
}

// SelectCipherSuite performs the server-side selection over a modern
// ClientHello cipher suite list with two-byte entries.
func (c *Conn) SelectCipherSuite(wire []byte) error {
	return c.selectCipherSuite(wire, cipherSuiteLenTLS)
}

// SelectCipherSuiteSSLv2 performs the server-side selection over an
// SSLv2-compatible ClientHello list with three-byte entries.
func (c *Conn) SelectCipherSuiteSSLv2(wire []byte) error {
	return c.selectCipherSuite(wire, cipherSuiteLenSSLv2)
}

func (c *Conn) selectCipherSuite(wire []byte, stride int) error {
	if len(wire) == 0 || len(wire)%stride != 0 {
		return trace.BadParameter("malformed cipher suite list")
	}

	// RFC 7507: if the client attempts to negotiate a lower version than
	// the highest we support and its list carries TLS_FALLBACK_SCSV, the
	// client previously failed a higher-version handshake with us, so a
	// downgrade attack is in progress.
	if c.ClientProtocolVersion < c.ServerProtocolVersion &&
		wireContains(wire, stride, TLS_FALLBACK_SCSV) {
		c.closed = true
		return trace.Wrap(ErrFallbackDetected)
	}

	// RFC 5746, Section 3.6: a server must check for
	// TLS_EMPTY_RENEGOTIATION_INFO_SCSV.
	if wireContains(wire, stride, TLS_EMPTY_RENEGOTIATION_INFO_SCSV) {
		c.SecureRenegotiation = true
	}

	suite := c.negotiatedSuite(wire, stride)
	if suite == nil {
		return trace.Wrap(ErrCipherNotSupported)
	}

	// Configure the key exchange once, on the winner only.
	if suite.kex != nil {
		if err := suite.kex.configure(suite, c); err != nil {
			return trace.Wrap(err)
		}
	}

	return c.commitCipherSuite(suite)
}

// ConfirmCipherSuite is the client-side check of the server's choice: the
// suite must have been offered (it appears in our policy), must still be
// runnable, must match the chosen PSK's hash, and must not change across a
// HelloRetryRequest. See RFC 8446, Sections 4.1.3, 4.1.4 and 4.2.11.
func (c *Conn) ConfirmCipherSuite(id uint16) error {
	var suite *CipherSuite
	for _, entry := range c.securityPolicy().entries {
		if entry.kind == entrySuite && entry.suite.id == id {
			suite = entry.suite
			break
		}
	}
	if suite == nil {
		return trace.Wrap(ErrIllegalParameter)
	}

	if !suite.available {
		return trace.Wrap(ErrCipherNotSupported)
	}

	// Clients MUST verify that the server selected a cipher suite
	// indicating a Hash associated with the PSK.
	if c.ChosenPSK != nil && suite.prfAlg != c.ChosenPSK.HMACAlg {
		return trace.Wrap(ErrCipherNotSupported)
	}

	// The cipher suite supplied in the ServerHello must be the same as
	// the one in the HelloRetryRequest.
	if c.HelloRetryRequest {
		if c.cipherSuite == nil || c.cipherSuite.id != id {
			return trace.Wrap(ErrIllegalParameter)
		}
	}

	return c.commitCipherSuite(suite)
}

func (c *Conn) commitCipherSuite(suite *CipherSuite) error {
	c.cipherSuite = suite

	// For SSLv3 use the SSLv3-specific shadow suite.
	if c.Version == VersionSSL30 {
		if suite.sslv3Suite == nil {
			return trace.Wrap(ErrCipherNotSupported)
		}
		c.cipherSuite = suite.sslv3Suite
	}

	return nil
}
