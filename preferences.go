// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

import "github.com/gravitational/trace"

type entryKind uint8

const (
	entrySuite entryKind = iota
	entryGroupStart
	entryGroupEnd
)

// A PreferenceEntry is one element of a server preference list: either a
// cipher suite or an equal-preference group delimiter. Delimiters carry no
// suite, so they can never reach the catalog lookup or the wire scan.
type PreferenceEntry struct {
	kind  entryKind
	suite *CipherSuite
}

// Suite wraps a catalog suite as a preference entry.
func Suite(s *CipherSuite) PreferenceEntry {
	return PreferenceEntry{kind: entrySuite, suite: s}
}

// GroupStart and GroupEnd delimit an equal-preference group. Within a
// group the client's ordering, not the server's, picks the winner.
var (
	GroupStart = PreferenceEntry{kind: entryGroupStart}
	GroupEnd   = PreferenceEntry{kind: entryGroupEnd}
)

// A PreferenceList is an ordered cipher suite preference, possibly
// containing equal-preference groups.
type PreferenceList struct {
	entries []PreferenceEntry
}

// NewPreferenceList builds a preference list, rejecting malformed group
// structure: unbalanced or nested delimiters and empty groups.
func NewPreferenceList(entries ...PreferenceEntry) (*PreferenceList, error) {
	list := &PreferenceList{entries: entries}
	if err := list.validate(); err != nil {
		return nil, trace.Wrap(err)
	}
	return list, nil
}

func mustPreferenceList(entries ...PreferenceEntry) *PreferenceList {
	list, err := NewPreferenceList(entries...)
	if err != nil {
		panic(err)
	}
	return list
}

func (l *PreferenceList) validate() error {
	inGroup := false
	groupSize := 0
	for _, entry := range l.entries {
		switch entry.kind {
		case entryGroupStart:
			if inGroup {
				return trace.BadParameter("nested equal-preference group")
			}
			inGroup = true
			groupSize = 0
		case entryGroupEnd:
			if !inGroup {
				return trace.BadParameter("unmatched equal-preference group end")
			}
			if groupSize == 0 {
				return trace.BadParameter("empty equal-preference group")
			}
			inGroup = false
		case entrySuite:
			if entry.suite == nil {
				return trace.BadParameter("nil cipher suite in preference list")
			}
			if inGroup {
				groupSize++
			}
		}
	}
	if inGroup {
		return trace.BadParameter("unterminated equal-preference group")
	}
	return nil
}

// Len returns the number of entries, delimiters included.
func (l *PreferenceList) Len() int {
	return len(l.entries)
}

func suites(list ...*CipherSuite) []PreferenceEntry {
	entries := make([]PreferenceEntry, 0, len(list))
	for _, s := range list {
		entries = append(entries, Suite(s))
	}
	return entries
}

// DefaultPreferences is the production default: the TLS 1.3 suites, then the
// forward-secret AEAD suites, then ECDHE CBC suites, then plain-RSA GCM and
// CBC suites, and 3DES last. The RC4 suites are not included.
var DefaultPreferences = mustPreferenceList(suites(
	tls13AES128GCMSHA256,
	tls13AES256GCMSHA384,
	tls13ChaCha20Poly1305SHA256,
	ecdheECDSAWithAES128GCMSHA256,
	ecdheECDSAWithAES256GCMSHA384,
	ecdheECDSAWithChaCha20Poly1305,
	ecdheRSAWithAES128GCMSHA256,
	ecdheRSAWithAES256GCMSHA384,
	ecdheRSAWithChaCha20Poly1305,
	ecdheKyberRSAWithAES256GCMSHA384,
	dheRSAWithAES128GCMSHA256,
	dheRSAWithAES256GCMSHA384,
	dheRSAWithChaCha20Poly1305,
	ecdheECDSAWithAES128CBCSHA256,
	ecdheECDSAWithAES256CBCSHA384,
	ecdheRSAWithAES128CBCSHA256,
	ecdheRSAWithAES256CBCSHA384,
	ecdheECDSAWithAES128CBCSHA,
	ecdheECDSAWithAES256CBCSHA,
	ecdheRSAWithAES128CBCSHA,
	ecdheRSAWithAES256CBCSHA,
	rsaWithAES128GCMSHA256,
	rsaWithAES256GCMSHA384,
	rsaWithAES128CBCSHA256,
	rsaWithAES256CBCSHA256,
	rsaWithAES128CBCSHA,
	rsaWithAES256CBCSHA,
	rsaWith3DESEDECBCSHA,
)...)

// PreferencesTestAll lists every catalog suite in IANA order. Exposed for
// integration testing.
var PreferencesTestAll = mustPreferenceList(suites(allCipherSuites...)...)

// PreferencesTestAllTLS12 lists every pre-TLS-1.3 suite in IANA order.
var PreferencesTestAllTLS12 = mustPreferenceList(suites(
	rsaWithRC4128MD5,
	rsaWithRC4128SHA,
	rsaWith3DESEDECBCSHA,
	dheRSAWith3DESEDECBCSHA,
	rsaWithAES128CBCSHA,
	dheRSAWithAES128CBCSHA,
	rsaWithAES256CBCSHA,
	dheRSAWithAES256CBCSHA,
	rsaWithAES128CBCSHA256,
	rsaWithAES256CBCSHA256,
	dheRSAWithAES128CBCSHA256,
	dheRSAWithAES256CBCSHA256,
	rsaWithAES128GCMSHA256,
	rsaWithAES256GCMSHA384,
	dheRSAWithAES128GCMSHA256,
	dheRSAWithAES256GCMSHA384,
	ecdheECDSAWithAES128CBCSHA,
	ecdheECDSAWithAES256CBCSHA,
	ecdheRSAWithRC4128SHA,
	ecdheRSAWith3DESEDECBCSHA,
	ecdheRSAWithAES128CBCSHA,
	ecdheRSAWithAES256CBCSHA,
	ecdheECDSAWithAES128CBCSHA256,
	ecdheECDSAWithAES256CBCSHA384,
	ecdheRSAWithAES128CBCSHA256,
	ecdheRSAWithAES256CBCSHA384,
	ecdheECDSAWithAES128GCMSHA256,
	ecdheECDSAWithAES256GCMSHA384,
	ecdheRSAWithAES128GCMSHA256,
	ecdheRSAWithAES256GCMSHA384,
	ecdheRSAWithChaCha20Poly1305,
	ecdheECDSAWithChaCha20Poly1305,
	dheRSAWithChaCha20Poly1305,
	ecdheKyberRSAWithAES256GCMSHA384,
)...)

// PreferencesTestAllFIPS lists a FIPS-approved subset of the catalog. It is
// narrower than what SetFIPSMode leaves available, which only excludes RC4,
// ChaCha20-Poly1305 and the hybrid-KEM suites.
var PreferencesTestAllFIPS = mustPreferenceList(suites(
	rsaWith3DESEDECBCSHA,
	rsaWithAES128CBCSHA,
	rsaWithAES256CBCSHA,
	rsaWithAES128CBCSHA256,
	rsaWithAES256CBCSHA256,
	dheRSAWithAES128CBCSHA256,
	dheRSAWithAES256CBCSHA256,
	rsaWithAES128GCMSHA256,
	rsaWithAES256GCMSHA384,
	dheRSAWithAES128GCMSHA256,
	dheRSAWithAES256GCMSHA384,
	ecdheECDSAWithAES128CBCSHA256,
	ecdheECDSAWithAES256CBCSHA384,
	ecdheRSAWithAES128CBCSHA256,
	ecdheRSAWithAES256CBCSHA384,
	ecdheECDSAWithAES128GCMSHA256,
	ecdheECDSAWithAES256GCMSHA384,
	ecdheRSAWithAES128GCMSHA256,
	ecdheRSAWithAES256GCMSHA384,
)...)

// PreferencesTestAllECDSA lists the ECDSA-authenticated suites.
var PreferencesTestAllECDSA = mustPreferenceList(suites(
	ecdheECDSAWithAES128CBCSHA,
	ecdheECDSAWithAES256CBCSHA,
	ecdheECDSAWithAES128CBCSHA256,
	ecdheECDSAWithAES256CBCSHA384,
	ecdheECDSAWithAES128GCMSHA256,
	ecdheECDSAWithAES256GCMSHA384,
	ecdheECDSAWithChaCha20Poly1305,
)...)

// PreferencesTestAllRSAKex lists the suites using RSA key exchange.
var PreferencesTestAllRSAKex = mustPreferenceList(suites(
	rsaWithRC4128MD5,
	rsaWithRC4128SHA,
	rsaWith3DESEDECBCSHA,
	rsaWithAES128CBCSHA,
	rsaWithAES256CBCSHA,
	rsaWithAES128CBCSHA256,
	rsaWithAES256CBCSHA256,
	rsaWithAES128GCMSHA256,
	rsaWithAES256GCMSHA384,
)...)

// PreferencesTestAllTLS13 lists the TLS 1.3 suites in IANA order.
var PreferencesTestAllTLS13 = mustPreferenceList(suites(
	tls13AES128GCMSHA256,
	tls13AES256GCMSHA384,
	tls13ChaCha20Poly1305SHA256,
)...)

// PreferencesTestAllEqualPreferenceTLS13 places every TLS 1.3 suite inside
// a single equal-preference group, so the client ordering decides.
var PreferencesTestAllEqualPreferenceTLS13 = mustPreferenceList(
	GroupStart,
	Suite(tls13AES128GCMSHA256),
	Suite(tls13AES256GCMSHA384),
	Suite(tls13ChaCha20Poly1305SHA256),
	GroupEnd,
)

// PreferencesTestArbitraryEqualPreferences is an arbitrarily complex list
// with an equal-preference group. For negotiation tests only.
var PreferencesTestArbitraryEqualPreferences = mustPreferenceList(
	Suite(ecdheRSAWithAES128CBCSHA256),
	Suite(tls13ChaCha20Poly1305SHA256),
	GroupStart,
	Suite(tls13AES128GCMSHA256),
	Suite(tls13AES256GCMSHA384),
	Suite(rsaWithRC4128MD5),
	GroupEnd,
	Suite(ecdheRSAWithChaCha20Poly1305),
)
