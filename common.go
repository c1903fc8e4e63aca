// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

import "fmt"

const (
	VersionSSL30 = 0x0300
	VersionTLS10 = 0x0301
	VersionTLS11 = 0x0302
	VersionTLS12 = 0x0303
	VersionTLS13 = 0x0304
)

// CurveID is the type of a TLS identifier for an elliptic curve. See
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xml#tls-parameters-8
type CurveID uint16

const (
	CurveP256 CurveID = 23
	CurveP384 CurveID = 24
	CurveP521 CurveID = 25
	X25519    CurveID = 29
)

// KEMID identifies a key-encapsulation mechanism negotiated through the
// hybrid key-exchange extension of
// https://tools.ietf.org/html/draft-campagna-tls-bike-sike-hybrid.
type KEMID uint16

const (
	KEMKyber512R3 KEMID = 28
)

// AuthMethod describes how a cipher suite authenticates the server. TLS 1.3
// suites carry no authentication method of their own; the signature scheme
// negotiation decides instead.
type AuthMethod uint8

const (
	AuthRSA AuthMethod = iota
	AuthECDSA
	AuthTLS13Any
)

// DHParams holds the finite-field group a connection is willing to use for
// DHE key exchange. The group is configured by the endpoint; a connection
// without one cannot negotiate DHE suites.
type DHParams struct {
	P []byte
	G []byte
}

// PSK is the pre-shared key chosen for a connection by the PSK subsystem.
// Only the binder hash participates in cipher suite negotiation.
type PSK struct {
	Identity []byte
	HMACAlg  HMACAlg
}

// CipherSuiteName returns the name of the cipher suite with the given id,
// or a fallback representation of the id itself when it is not part of the
// catalog.
func CipherSuiteName(id uint16) string {
	for _, suite := range allCipherSuites {
		if suite.id == id {
			return suite.name
		}
	}
	return fmt.Sprintf("0x%04X", id)
}
