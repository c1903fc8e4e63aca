// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

// A Conn is the view of a connection that cipher suite negotiation consumes
// and mutates. The handshake driver fills in the offered and negotiated
// protocol versions, the endpoint's credentials and key-exchange material,
// and (when applicable) the PSK chosen earlier in the handshake; negotiation
// writes the committed cipher suite and the SCSV-derived flags back.
type Conn struct {
	// ClientProtocolVersion is the version the client requested and
	// ServerProtocolVersion the highest version this endpoint supports.
	// Version is the version actually negotiated for the connection.
	ClientProtocolVersion uint16
	ServerProtocolVersion uint16
	Version               uint16

	// Policy is the active security policy's cipher suite preference list.
	// A nil Policy selects DefaultPreferences.
	Policy *PreferenceList

	// CertificateTypes lists the key types of the certificates available
	// for this connection, as reported by the auth-selection subsystem.
	CertificateTypes []AuthMethod

	// SupportedCurves are the curves offered by the peer, in the peer's
	// order. DHParams, when non-nil, enables DHE suites. SupportedKEMs are
	// the hybrid KEMs offered by the peer.
	SupportedCurves []CurveID
	DHParams        *DHParams
	SupportedKEMs   []KEMID

	// ChosenPSK pins the PRF hash any negotiated suite must use.
	ChosenPSK *PSK

	// HelloRetryRequest reports that a HelloRetryRequest was already
	// processed on this connection, so the cipher suite it pinned must
	// reappear unchanged in the ServerHello.
	HelloRetryRequest bool

	// SecureRenegotiation is set when the peer signals
	// TLS_EMPTY_RENEGOTIATION_INFO_SCSV. See RFC 5746, Section 3.6.
	SecureRenegotiation bool

	closed      bool
	cipherSuite *CipherSuite
	chosenCurve CurveID
	chosenKEM   KEMID
}

func (c *Conn) securityPolicy() *PreferenceList {
	if c.Policy != nil {
		return c.Policy
	}
	return DefaultPreferences
}

// NegotiatedCipherSuite returns the suite committed to the connection, or
// nil if negotiation has not completed.
func (c *Conn) NegotiatedCipherSuite() *CipherSuite {
	return c.cipherSuite
}

// Closed reports whether negotiation shut the connection down, which only
// happens on fallback detection.
func (c *Conn) Closed() bool {
	return c.closed
}

// ChosenCurve returns the curve selected while configuring an ECDHE or
// hybrid key exchange, and is only meaningful after a successful server-side
// selection of such a suite.
func (c *Conn) ChosenCurve() CurveID {
	return c.chosenCurve
}

// ChosenKEM returns the KEM selected for a hybrid key exchange.
func (c *Conn) ChosenKEM() KEMID {
	return c.chosenKEM
}
