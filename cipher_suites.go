// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

import "github.com/gravitational/trace"

// A CipherSuite binds a wire identifier to a key exchange, an authentication
// method, a PRF hash and the record algorithms that can protect traffic
// under it. The static fields are immutable; available, recordAlg and
// sslv3Suite are written exactly once by Initialize and cleared by Teardown,
// so negotiation reads them without locking.
type CipherSuite struct {
	name       string
	id         uint16
	kex        *keyExchange // nil for TLS 1.3 suites
	auth       AuthMethod
	prfAlg     HMACAlg
	minVersion uint16

	// recordAlgs lists acceptable record algorithms, most preferred first.
	// Composite hardware-accelerated forms come before software fallbacks.
	recordAlgs []*recordAlgorithm

	// sslv3RecordAlg, when set, replaces the selected record algorithm on
	// SSLv3 connections via the sslv3Suite shadow.
	sslv3RecordAlg *recordAlgorithm

	available  bool
	recordAlg  *recordAlgorithm
	sslv3Suite *CipherSuite
}

// ID returns the suite's two-byte IANA identifier.
func (s *CipherSuite) ID() uint16 { return s.id }

// Name returns the suite's diagnostic name. It is never compared on the
// wire.
func (s *CipherSuite) Name() string { return s.name }

// Available reports whether Initialize found a runnable record algorithm
// for the suite on this build.
func (s *CipherSuite) Available() bool { return s.available }

// MinVersion returns the lowest protocol version the suite permits.
func (s *CipherSuite) MinVersion() uint16 { return s.minVersion }

// PRFAlg returns the hash underpinning the suite's PRF and, in TLS 1.3, the
// transcript and key schedule. It also pins PSK compatibility.
func (s *CipherSuite) PRFAlg() HMACAlg { return s.prfAlg }

// RequiresECCExtension reports whether negotiating the suite requires the
// supported-curves extension. TLS 1.3 does not include key exchange in its
// cipher suites, but the elliptic curves extension is always required.
func (s *CipherSuite) RequiresECCExtension() bool {
	if s.minVersion >= VersionTLS13 {
		return true
	}
	return kexIncludes(s.kex, kexECDHE)
}

// RequiresPQExtension reports whether the suite's key exchange carries a KEM
// component.
func (s *CipherSuite) RequiresPQExtension() bool {
	return kexIncludes(s.kex, kexKEM)
}

// A list of cipher suite IDs that this package negotiates, plus the
// signalling values consumed during negotiation.
//
// Taken from https://www.iana.org/assignments/tls-parameters/tls-parameters.xml
const (
	// TLS 1.0 - 1.2 cipher suites.
	TLS_RSA_WITH_RC4_128_MD5                uint16 = 0x0004
	TLS_RSA_WITH_RC4_128_SHA                uint16 = 0x0005
	TLS_RSA_WITH_3DES_EDE_CBC_SHA           uint16 = 0x000a
	TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA       uint16 = 0x0016
	TLS_RSA_WITH_AES_128_CBC_SHA            uint16 = 0x002f
	TLS_DHE_RSA_WITH_AES_128_CBC_SHA        uint16 = 0x0033
	TLS_RSA_WITH_AES_256_CBC_SHA            uint16 = 0x0035
	TLS_DHE_RSA_WITH_AES_256_CBC_SHA        uint16 = 0x0039
	TLS_RSA_WITH_AES_128_CBC_SHA256         uint16 = 0x003c
	TLS_RSA_WITH_AES_256_CBC_SHA256         uint16 = 0x003d
	TLS_DHE_RSA_WITH_AES_128_CBC_SHA256     uint16 = 0x0067
	TLS_DHE_RSA_WITH_AES_256_CBC_SHA256     uint16 = 0x006b
	TLS_RSA_WITH_AES_128_GCM_SHA256         uint16 = 0x009c
	TLS_RSA_WITH_AES_256_GCM_SHA384         uint16 = 0x009d
	TLS_DHE_RSA_WITH_AES_128_GCM_SHA256     uint16 = 0x009e
	TLS_DHE_RSA_WITH_AES_256_GCM_SHA384     uint16 = 0x009f
	TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA    uint16 = 0xc009
	TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA    uint16 = 0xc00a
	TLS_ECDHE_RSA_WITH_RC4_128_SHA          uint16 = 0xc011
	TLS_ECDHE_RSA_WITH_3DES_EDE_CBC_SHA     uint16 = 0xc012
	TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA      uint16 = 0xc013
	TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA      uint16 = 0xc014
	TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA256 uint16 = 0xc023
	TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA384 uint16 = 0xc024
	TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA256   uint16 = 0xc027
	TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA384   uint16 = 0xc028
	TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256 uint16 = 0xc02b
	TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384 uint16 = 0xc02c
	TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256   uint16 = 0xc02f
	TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384   uint16 = 0xc030
	TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305    uint16 = 0xcca8
	TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305  uint16 = 0xcca9
	TLS_DHE_RSA_WITH_CHACHA20_POLY1305      uint16 = 0xccaa

	// TLS 1.3 cipher suites.
	TLS_AES_128_GCM_SHA256       uint16 = 0x1301
	TLS_AES_256_GCM_SHA384       uint16 = 0x1302
	TLS_CHACHA20_POLY1305_SHA256 uint16 = 0x1303

	// Hybrid post-quantum key exchange, from
	// https://tools.ietf.org/html/draft-campagna-tls-bike-sike-hybrid.
	TLS_ECDHE_KYBER_RSA_WITH_AES_256_GCM_SHA384 uint16 = 0xff0c

	// TLS_FALLBACK_SCSV isn't a standard cipher suite but an indicator
	// that the client is doing version fallback. See RFC 7507.
	TLS_FALLBACK_SCSV uint16 = 0x5600

	// TLS_EMPTY_RENEGOTIATION_INFO_SCSV signals support for secure
	// renegotiation. See RFC 5746.
	TLS_EMPTY_RENEGOTIATION_INFO_SCSV uint16 = 0x00ff
)

var rsaWithRC4128MD5 = &CipherSuite{
	name:           "RC4-MD5",
	id:             TLS_RSA_WITH_RC4_128_MD5,
	kex:            kexRSA,
	auth:           AuthRSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlgRC4MD5},
	sslv3RecordAlg: recordAlgRC4SSLv3MD5,
}

var rsaWithRC4128SHA = &CipherSuite{
	name:           "RC4-SHA",
	id:             TLS_RSA_WITH_RC4_128_SHA,
	kex:            kexRSA,
	auth:           AuthRSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlgRC4SHA},
	sslv3RecordAlg: recordAlgRC4SSLv3SHA,
}

var rsaWith3DESEDECBCSHA = &CipherSuite{
	name:           "DES-CBC3-SHA",
	id:             TLS_RSA_WITH_3DES_EDE_CBC_SHA,
	kex:            kexRSA,
	auth:           AuthRSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlg3DESSHA},
	sslv3RecordAlg: recordAlg3DESSSLv3SHA,
}

var dheRSAWith3DESEDECBCSHA = &CipherSuite{
	name:           "DHE-RSA-DES-CBC3-SHA",
	id:             TLS_DHE_RSA_WITH_3DES_EDE_CBC_SHA,
	kex:            kexDHE,
	auth:           AuthRSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlg3DESSHA},
	sslv3RecordAlg: recordAlg3DESSSLv3SHA,
}

var rsaWithAES128CBCSHA = &CipherSuite{
	name:           "AES128-SHA",
	id:             TLS_RSA_WITH_AES_128_CBC_SHA,
	kex:            kexRSA,
	auth:           AuthRSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlgAES128SHAComposite, recordAlgAES128SHA},
	sslv3RecordAlg: recordAlgAES128SSLv3SHA,
}

var dheRSAWithAES128CBCSHA = &CipherSuite{
	name:           "DHE-RSA-AES128-SHA",
	id:             TLS_DHE_RSA_WITH_AES_128_CBC_SHA,
	kex:            kexDHE,
	auth:           AuthRSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlgAES128SHAComposite, recordAlgAES128SHA},
	sslv3RecordAlg: recordAlgAES128SSLv3SHA,
}

var rsaWithAES256CBCSHA = &CipherSuite{
	name:           "AES256-SHA",
	id:             TLS_RSA_WITH_AES_256_CBC_SHA,
	kex:            kexRSA,
	auth:           AuthRSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlgAES256SHAComposite, recordAlgAES256SHA},
	sslv3RecordAlg: recordAlgAES256SSLv3SHA,
}

var dheRSAWithAES256CBCSHA = &CipherSuite{
	name:           "DHE-RSA-AES256-SHA",
	id:             TLS_DHE_RSA_WITH_AES_256_CBC_SHA,
	kex:            kexDHE,
	auth:           AuthRSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlgAES256SHAComposite, recordAlgAES256SHA},
	sslv3RecordAlg: recordAlgAES256SSLv3SHA,
}

var rsaWithAES128CBCSHA256 = &CipherSuite{
	name:       "AES128-SHA256",
	id:         TLS_RSA_WITH_AES_128_CBC_SHA256,
	kex:        kexRSA,
	auth:       AuthRSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES128SHA256Composite, recordAlgAES128SHA256},
}

var rsaWithAES256CBCSHA256 = &CipherSuite{
	name:       "AES256-SHA256",
	id:         TLS_RSA_WITH_AES_256_CBC_SHA256,
	kex:        kexRSA,
	auth:       AuthRSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES256SHA256Composite, recordAlgAES256SHA256},
}

var dheRSAWithAES128CBCSHA256 = &CipherSuite{
	name:       "DHE-RSA-AES128-SHA256",
	id:         TLS_DHE_RSA_WITH_AES_128_CBC_SHA256,
	kex:        kexDHE,
	auth:       AuthRSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES128SHA256Composite, recordAlgAES128SHA256},
}

var dheRSAWithAES256CBCSHA256 = &CipherSuite{
	name:       "DHE-RSA-AES256-SHA256",
	id:         TLS_DHE_RSA_WITH_AES_256_CBC_SHA256,
	kex:        kexDHE,
	auth:       AuthRSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES256SHA256Composite, recordAlgAES256SHA256},
}

var rsaWithAES128GCMSHA256 = &CipherSuite{
	name:       "AES128-GCM-SHA256",
	id:         TLS_RSA_WITH_AES_128_GCM_SHA256,
	kex:        kexRSA,
	auth:       AuthRSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES128GCM},
}

var rsaWithAES256GCMSHA384 = &CipherSuite{
	name:       "AES256-GCM-SHA384",
	id:         TLS_RSA_WITH_AES_256_GCM_SHA384,
	kex:        kexRSA,
	auth:       AuthRSA,
	prfAlg:     HMACSHA384,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES256GCM},
}

var dheRSAWithAES128GCMSHA256 = &CipherSuite{
	name:       "DHE-RSA-AES128-GCM-SHA256",
	id:         TLS_DHE_RSA_WITH_AES_128_GCM_SHA256,
	kex:        kexDHE,
	auth:       AuthRSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES128GCM},
}

var dheRSAWithAES256GCMSHA384 = &CipherSuite{
	name:       "DHE-RSA-AES256-GCM-SHA384",
	id:         TLS_DHE_RSA_WITH_AES_256_GCM_SHA384,
	kex:        kexDHE,
	auth:       AuthRSA,
	prfAlg:     HMACSHA384,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES256GCM},
}

var tls13AES128GCMSHA256 = &CipherSuite{
	name:       "TLS_AES_128_GCM_SHA256",
	id:         TLS_AES_128_GCM_SHA256,
	auth:       AuthTLS13Any,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS13,
	recordAlgs: []*recordAlgorithm{recordAlgTLS13AES128GCM},
}

var tls13AES256GCMSHA384 = &CipherSuite{
	name:       "TLS_AES_256_GCM_SHA384",
	id:         TLS_AES_256_GCM_SHA384,
	auth:       AuthTLS13Any,
	prfAlg:     HMACSHA384,
	minVersion: VersionTLS13,
	recordAlgs: []*recordAlgorithm{recordAlgTLS13AES256GCM},
}

var tls13ChaCha20Poly1305SHA256 = &CipherSuite{
	name:       "TLS_CHACHA20_POLY1305_SHA256",
	id:         TLS_CHACHA20_POLY1305_SHA256,
	auth:       AuthTLS13Any,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS13,
	recordAlgs: []*recordAlgorithm{recordAlgTLS13ChaCha20Poly1305},
}

var ecdheECDSAWithAES128CBCSHA = &CipherSuite{
	name:           "ECDHE-ECDSA-AES128-SHA",
	id:             TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA,
	kex:            kexECDHE,
	auth:           AuthECDSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlgAES128SHAComposite, recordAlgAES128SHA},
	sslv3RecordAlg: recordAlgAES128SSLv3SHA,
}

var ecdheECDSAWithAES256CBCSHA = &CipherSuite{
	name:           "ECDHE-ECDSA-AES256-SHA",
	id:             TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA,
	kex:            kexECDHE,
	auth:           AuthECDSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlgAES256SHAComposite, recordAlgAES256SHA},
	sslv3RecordAlg: recordAlgAES256SSLv3SHA,
}

var ecdheRSAWithRC4128SHA = &CipherSuite{
	name:           "ECDHE-RSA-RC4-SHA",
	id:             TLS_ECDHE_RSA_WITH_RC4_128_SHA,
	kex:            kexECDHE,
	auth:           AuthRSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlgRC4SHA},
	sslv3RecordAlg: recordAlgRC4SSLv3SHA,
}

var ecdheRSAWith3DESEDECBCSHA = &CipherSuite{
	name:           "ECDHE-RSA-DES-CBC3-SHA",
	id:             TLS_ECDHE_RSA_WITH_3DES_EDE_CBC_SHA,
	kex:            kexECDHE,
	auth:           AuthRSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlg3DESSHA},
	sslv3RecordAlg: recordAlg3DESSSLv3SHA,
}

var ecdheRSAWithAES128CBCSHA = &CipherSuite{
	name:           "ECDHE-RSA-AES128-SHA",
	id:             TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA,
	kex:            kexECDHE,
	auth:           AuthRSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlgAES128SHAComposite, recordAlgAES128SHA},
	sslv3RecordAlg: recordAlgAES128SSLv3SHA,
}

var ecdheRSAWithAES256CBCSHA = &CipherSuite{
	name:           "ECDHE-RSA-AES256-SHA",
	id:             TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA,
	kex:            kexECDHE,
	auth:           AuthRSA,
	prfAlg:         HMACSHA256,
	minVersion:     VersionSSL30,
	recordAlgs:     []*recordAlgorithm{recordAlgAES256SHAComposite, recordAlgAES256SHA},
	sslv3RecordAlg: recordAlgAES256SSLv3SHA,
}

var ecdheECDSAWithAES128CBCSHA256 = &CipherSuite{
	name:       "ECDHE-ECDSA-AES128-SHA256",
	id:         TLS_ECDHE_ECDSA_WITH_AES_128_CBC_SHA256,
	kex:        kexECDHE,
	auth:       AuthECDSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES128SHA256Composite, recordAlgAES128SHA256},
}

var ecdheECDSAWithAES256CBCSHA384 = &CipherSuite{
	name:       "ECDHE-ECDSA-AES256-SHA384",
	id:         TLS_ECDHE_ECDSA_WITH_AES_256_CBC_SHA384,
	kex:        kexECDHE,
	auth:       AuthECDSA,
	prfAlg:     HMACSHA384,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES256SHA384},
}

var ecdheRSAWithAES128CBCSHA256 = &CipherSuite{
	name:       "ECDHE-RSA-AES128-SHA256",
	id:         TLS_ECDHE_RSA_WITH_AES_128_CBC_SHA256,
	kex:        kexECDHE,
	auth:       AuthRSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES128SHA256Composite, recordAlgAES128SHA256},
}

var ecdheRSAWithAES256CBCSHA384 = &CipherSuite{
	name:       "ECDHE-RSA-AES256-SHA384",
	id:         TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA384,
	kex:        kexECDHE,
	auth:       AuthRSA,
	prfAlg:     HMACSHA384,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES256SHA384},
}

var ecdheECDSAWithAES128GCMSHA256 = &CipherSuite{
	name:       "ECDHE-ECDSA-AES128-GCM-SHA256",
	id:         TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	kex:        kexECDHE,
	auth:       AuthECDSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES128GCM},
}

var ecdheECDSAWithAES256GCMSHA384 = &CipherSuite{
	name:       "ECDHE-ECDSA-AES256-GCM-SHA384",
	id:         TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	kex:        kexECDHE,
	auth:       AuthECDSA,
	prfAlg:     HMACSHA384,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES256GCM},
}

var ecdheRSAWithAES128GCMSHA256 = &CipherSuite{
	name:       "ECDHE-RSA-AES128-GCM-SHA256",
	id:         TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	kex:        kexECDHE,
	auth:       AuthRSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES128GCM},
}

var ecdheRSAWithAES256GCMSHA384 = &CipherSuite{
	name:       "ECDHE-RSA-AES256-GCM-SHA384",
	id:         TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	kex:        kexECDHE,
	auth:       AuthRSA,
	prfAlg:     HMACSHA384,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES256GCM},
}

var ecdheRSAWithChaCha20Poly1305 = &CipherSuite{
	name:       "ECDHE-RSA-CHACHA20-POLY1305",
	id:         TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
	kex:        kexECDHE,
	auth:       AuthRSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgChaCha20Poly1305},
}

var ecdheECDSAWithChaCha20Poly1305 = &CipherSuite{
	name:       "ECDHE-ECDSA-CHACHA20-POLY1305",
	id:         TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
	kex:        kexECDHE,
	auth:       AuthECDSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgChaCha20Poly1305},
}

var dheRSAWithChaCha20Poly1305 = &CipherSuite{
	name:       "DHE-RSA-CHACHA20-POLY1305",
	id:         TLS_DHE_RSA_WITH_CHACHA20_POLY1305,
	kex:        kexDHE,
	auth:       AuthRSA,
	prfAlg:     HMACSHA256,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgChaCha20Poly1305},
}

var ecdheKyberRSAWithAES256GCMSHA384 = &CipherSuite{
	name:       "ECDHE-KYBER-RSA-AES256-GCM-SHA384",
	id:         TLS_ECDHE_KYBER_RSA_WITH_AES_256_GCM_SHA384,
	kex:        kexHybridECDHEKEM,
	auth:       AuthRSA,
	prfAlg:     HMACSHA384,
	minVersion: VersionTLS12,
	recordAlgs: []*recordAlgorithm{recordAlgAES256GCM},
}

// allCipherSuites holds every suite this package negotiates, in ascending
// order of IANA value. New cipher suites MUST be added here, IN ORDER, or
// CipherSuiteByID will not find them.
var allCipherSuites = []*CipherSuite{
	rsaWithRC4128MD5,                 // 0x0004
	rsaWithRC4128SHA,                 // 0x0005
	rsaWith3DESEDECBCSHA,             // 0x000A
	dheRSAWith3DESEDECBCSHA,          // 0x0016
	rsaWithAES128CBCSHA,              // 0x002F
	dheRSAWithAES128CBCSHA,           // 0x0033
	rsaWithAES256CBCSHA,              // 0x0035
	dheRSAWithAES256CBCSHA,           // 0x0039
	rsaWithAES128CBCSHA256,           // 0x003C
	rsaWithAES256CBCSHA256,           // 0x003D
	dheRSAWithAES128CBCSHA256,        // 0x0067
	dheRSAWithAES256CBCSHA256,        // 0x006B
	rsaWithAES128GCMSHA256,           // 0x009C
	rsaWithAES256GCMSHA384,           // 0x009D
	dheRSAWithAES128GCMSHA256,        // 0x009E
	dheRSAWithAES256GCMSHA384,        // 0x009F
	tls13AES128GCMSHA256,             // 0x1301
	tls13AES256GCMSHA384,             // 0x1302
	tls13ChaCha20Poly1305SHA256,      // 0x1303
	ecdheECDSAWithAES128CBCSHA,       // 0xC009
	ecdheECDSAWithAES256CBCSHA,       // 0xC00A
	ecdheRSAWithRC4128SHA,            // 0xC011
	ecdheRSAWith3DESEDECBCSHA,        // 0xC012
	ecdheRSAWithAES128CBCSHA,         // 0xC013
	ecdheRSAWithAES256CBCSHA,         // 0xC014
	ecdheECDSAWithAES128CBCSHA256,    // 0xC023
	ecdheECDSAWithAES256CBCSHA384,    // 0xC024
	ecdheRSAWithAES128CBCSHA256,      // 0xC027
	ecdheRSAWithAES256CBCSHA384,      // 0xC028
	ecdheECDSAWithAES128GCMSHA256,    // 0xC02B
	ecdheECDSAWithAES256GCMSHA384,    // 0xC02C
	ecdheRSAWithAES128GCMSHA256,      // 0xC02F
	ecdheRSAWithAES256GCMSHA384,      // 0xC030
	ecdheRSAWithChaCha20Poly1305,     // 0xCCA8
	ecdheECDSAWithChaCha20Poly1305,   // 0xCCA9
	dheRSAWithChaCha20Poly1305,       // 0xCCAA
	ecdheKyberRSAWithAES256GCMSHA384, // 0xFF0C
}

// CipherSuiteByID locates a catalog suite by its IANA value with a binary
// search over the sorted catalog. It returns ErrCipherNotSupported for ids
// outside the catalog, including the SCSV signalling values.
func CipherSuiteByID(id uint16) (*CipherSuite, error) {
	low, top := 0, len(allCipherSuites)-1
	for low <= top {
		mid := low + (top-low)/2
		switch suite := allCipherSuites[mid]; {
		case suite.id == id:
			return suite, nil
		case suite.id > id:
			top = mid - 1
		default:
			low = mid + 1
		}
	}
	return nil, trace.Wrap(ErrCipherNotSupported)
}
