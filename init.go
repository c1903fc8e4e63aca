// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

import (
	"github.com/gravitational/trace"
	"go.uber.org/zap"
)

var (
	logger = zap.NewNop()

	shouldInitCrypto  = true
	cryptoInitialized = false

	fipsMode  = false
	pqEnabled = true
)

// SetLogger installs the logger used for initialization diagnostics. The
// default discards everything.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// SetFIPSMode restricts availability probes to FIPS-approved ciphers. It
// takes effect at the next Initialize.
func SetFIPSMode(on bool) {
	fipsMode = on
}

// SetPQEnabled toggles the post-quantum subsystem. With PQ disabled,
// Initialize marks every suite whose key exchange carries a KEM component
// as unavailable. It takes effect at the next Initialize.
func SetPQEnabled(on bool) {
	pqEnabled = on
}

// DisableCryptoInit tells Initialize not to load the external crypto
// library's algorithm tables, for embedders that manage the library
// themselves. It must be called before the first Initialize.
func DisableCryptoInit() error {
	if cryptoInitialized {
		return trace.Wrap(ErrInitialized)
	}
	shouldInitCrypto = false
	return nil
}

// Initialize determines cipher suite availability and selects record
// algorithms. It must be called exactly once before any negotiation, or
// again only after a Teardown. The catalog is read-only between the two, so
// negotiation needs no locking.
func Initialize() error {
	availableCount := 0
	for _, suite := range allCipherSuites {
		suite.available = false
		suite.recordAlg = nil

		// Find the highest priority supported record algorithm. A cipher
		// won't be available if the CPU architecture or the build profile
		// lacks it; all HMAC algorithms are always supported.
		for _, alg := range suite.recordAlgs {
			if alg.cipher.available() {
				suite.available = true
				suite.recordAlg = alg
				break
			}
		}

		// Mark PQ cipher suites as unavailable if PQ is disabled. This
		// runs after record algorithm selection so the code path above
		// stays uniform.
		if kexIncludes(suite.kex, kexKEM) && !pqEnabled {
			suite.available = false
			suite.recordAlg = nil
		}

		// The hybrid KEM construction is not FIPS approved, and its bulk
		// cipher probes cannot see the key exchange; gate it here like
		// the PQ toggle.
		if fipsMode && kexIncludes(suite.kex, kexKEM) {
			suite.available = false
			suite.recordAlg = nil
		}

		// Build the SSLv3 shadow suite when SSLv3 uses a different record
		// algorithm.
		if suite.sslv3RecordAlg != nil && suite.sslv3RecordAlg.cipher.available() {
			shadow := *suite
			shadow.available = true
			shadow.recordAlg = suite.sslv3RecordAlg
			shadow.sslv3Suite = &shadow
			suite.sslv3Suite = &shadow
		} else {
			suite.sslv3Suite = suite
		}

		if suite.available {
			availableCount++
			logger.Debug("cipher suite initialized",
				zap.String("suite", suite.name),
				zap.String("cipher", suite.recordAlg.cipher.name),
				zap.Stringer("hmac", suite.recordAlg.hmac))
		} else {
			logger.Debug("cipher suite unavailable",
				zap.String("suite", suite.name))
		}
	}

	logger.Debug("cipher suites initialized",
		zap.Int("available", availableCount),
		zap.Int("total", len(allCipherSuites)))

	if shouldInitCrypto {
		loadCryptoTables()
	}

	cryptoInitialized = true

	return nil
}

// Teardown releases the SSLv3 shadow suites and resets every catalog entry
// to its uninitialized state, so a subsequent Initialize is a clean
// restart.
func Teardown() error {
	for _, suite := range allCipherSuites {
		suite.available = false
		suite.recordAlg = nil
		suite.sslv3Suite = nil
	}
	return nil
}

// loadCryptoTables is where a libcrypto-backed build would load its
// algorithm tables. The Go implementations are linked statically, so there
// is nothing to load; the should-init latch is kept so embedders that
// manage their own crypto library see the same contract.
func loadCryptoTables() {}
