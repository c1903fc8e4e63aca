// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

import "github.com/gravitational/trace"

// defaultCurvePreferences is the server-side curve order used when
// configuring ECDHE and hybrid key exchanges.
var defaultCurvePreferences = []CurveID{X25519, CurveP256, CurveP384, CurveP521}

// defaultKEMPreferences is the server-side KEM order for hybrid key
// exchanges.
var defaultKEMPreferences = []KEMID{KEMKyber512R3}

// A keyExchange describes one key-exchange method a pre-TLS-1.3 suite can
// bind. connectionSupported is a pure feasibility predicate and is the only
// part consulted during candidate selection; configure mutates connection
// state and runs once, on the final winner.
type keyExchange struct {
	name string

	// hybrid lists component methods for composed exchanges. kexIncludes
	// searches it.
	hybrid []*keyExchange

	connectionSupported func(suite *CipherSuite, conn *Conn) bool
	configure           func(suite *CipherSuite, conn *Conn) error
}

var kexRSA = &keyExchange{
	name: "RSA",
	connectionSupported: func(suite *CipherSuite, conn *Conn) bool {
		return true
	},
	configure: func(suite *CipherSuite, conn *Conn) error {
		return nil
	},
}

var kexDHE = &keyExchange{
	name: "DHE",
	connectionSupported: func(suite *CipherSuite, conn *Conn) bool {
		return conn.DHParams != nil
	},
	configure: func(suite *CipherSuite, conn *Conn) error {
		if conn.DHParams == nil {
			return trace.NotFound("no DH parameters configured for connection")
		}
		return nil
	},
}

var kexECDHE = &keyExchange{
	name: "ECDHE",
	connectionSupported: func(suite *CipherSuite, conn *Conn) bool {
		_, ok := chooseCurve(conn)
		return ok
	},
	configure: func(suite *CipherSuite, conn *Conn) error {
		curve, ok := chooseCurve(conn)
		if !ok {
			return trace.NotFound("no mutually supported curve")
		}
		conn.chosenCurve = curve
		return nil
	},
}

var kexKEM = &keyExchange{
	name: "KEM",
	connectionSupported: func(suite *CipherSuite, conn *Conn) bool {
		if !pqEnabled || fipsMode {
			return false
		}
		_, ok := chooseKEM(conn)
		return ok
	},
	configure: func(suite *CipherSuite, conn *Conn) error {
		kem, ok := chooseKEM(conn)
		if !ok {
			return trace.NotFound("no mutually supported KEM")
		}
		conn.chosenKEM = kem
		return nil
	},
}

var kexHybridECDHEKEM = &keyExchange{
	name:   "ECDHE-KEM",
	hybrid: []*keyExchange{kexECDHE, kexKEM},
	connectionSupported: func(suite *CipherSuite, conn *Conn) bool {
		return kexECDHE.connectionSupported(suite, conn) &&
			kexKEM.connectionSupported(suite, conn)
	},
	configure: func(suite *CipherSuite, conn *Conn) error {
		if err := kexECDHE.configure(suite, conn); err != nil {
			return trace.Wrap(err)
		}
		if err := kexKEM.configure(suite, conn); err != nil {
			return trace.Wrap(err)
		}
		return nil
	},
}

// kexIncludes reports whether kex is, or is composed from, target.
func kexIncludes(kex, target *keyExchange) bool {
	if kex == nil {
		return false
	}
	if kex == target {
		return true
	}
	for _, component := range kex.hybrid {
		if component == target {
			return true
		}
	}
	return false
}

func chooseCurve(conn *Conn) (CurveID, bool) {
	for _, ours := range defaultCurvePreferences {
		for _, theirs := range conn.SupportedCurves {
			if ours == theirs {
				return ours, true
			}
		}
	}
	return 0, false
}

func chooseKEM(conn *Conn) (KEMID, bool) {
	for _, ours := range defaultKEMPreferences {
		for _, theirs := range conn.SupportedKEMs {
			if ours == theirs {
				return ours, true
			}
		}
	}
	return 0, false
}
