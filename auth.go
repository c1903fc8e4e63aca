// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

// cipherSuiteValidForAuth reports whether a certificate exists for the
// connection whose key type matches the suite's authentication method.
// TLS 1.3 suites accept any certificate; the signature scheme negotiation
// narrows the choice later.
func cipherSuiteValidForAuth(conn *Conn, suite *CipherSuite) bool {
	if len(conn.CertificateTypes) == 0 {
		return false
	}
	if suite.auth == AuthTLS13Any {
		return true
	}
	for _, certType := range conn.CertificateTypes {
		if certType == suite.auth {
			return true
		}
	}
	return false
}
