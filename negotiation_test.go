// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func wireFrom(ids ...uint16) []byte {
	wire := make([]byte, 0, len(ids)*cipherSuiteLenTLS)
	for _, id := range ids {
		wire = append(wire, byte(id>>8), byte(id))
	}
	return wire
}

func sslv2WireFrom(ids ...uint16) []byte {
	wire := make([]byte, 0, len(ids)*cipherSuiteLenSSLv2)
	for _, id := range ids {
		wire = append(wire, 0, byte(id>>8), byte(id))
	}
	return wire
}

func testConn(version uint16, policy *PreferenceList) *Conn {
	return &Conn{
		ClientProtocolVersion: version,
		ServerProtocolVersion: version,
		Version:               version,
		Policy:                policy,
		CertificateTypes:      []AuthMethod{AuthRSA, AuthECDSA},
		SupportedCurves:       []CurveID{X25519, CurveP256},
		SupportedKEMs:         []KEMID{KEMKyber512R3},
	}
}

func policyOf(t *testing.T, entries ...PreferenceEntry) *PreferenceList {
	t.Helper()
	list, err := NewPreferenceList(entries...)
	require.NoError(t, err)
	return list
}

func TestServerPreferenceWinsOutsideGroups(t *testing.T) {
	initSuites(t)

	policy := policyOf(t,
		Suite(ecdheRSAWithAES128GCMSHA256), // 0xC02F
		Suite(ecdheRSAWithAES256GCMSHA384), // 0xC030
	)
	conn := testConn(VersionTLS12, policy)

	err := conn.SelectCipherSuite(wireFrom(
		TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
		TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	))
	require.NoError(t, err)
	require.Equal(t, TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256, conn.NegotiatedCipherSuite().ID())
}

func TestClientPreferenceWinsInsideGroup(t *testing.T) {
	initSuites(t)

	conn := testConn(VersionTLS13, PreferencesTestAllEqualPreferenceTLS13)
	err := conn.SelectCipherSuite(wireFrom(
		TLS_CHACHA20_POLY1305_SHA256,
		TLS_AES_256_GCM_SHA384,
		TLS_AES_128_GCM_SHA256,
	))
	require.NoError(t, err)
	require.Equal(t, TLS_CHACHA20_POLY1305_SHA256, conn.NegotiatedCipherSuite().ID())
}

func TestGroupWinnerLockedAtGroupEnd(t *testing.T) {
	initSuites(t)

	conn := testConn(VersionTLS13, PreferencesTestArbitraryEqualPreferences)
	// TLS_CHACHA20_POLY1305_SHA256 is ahead of the group in the policy but
	// not offered; the group's winner must be picked by client order and
	// locked in before any entry after the group is considered.
	err := conn.SelectCipherSuite(wireFrom(
		TLS_AES_256_GCM_SHA384,
		TLS_AES_128_GCM_SHA256,
	))
	require.NoError(t, err)
	require.Equal(t, TLS_AES_256_GCM_SHA384, conn.NegotiatedCipherSuite().ID())
}

func TestFallbackSCSVDetected(t *testing.T) {
	initSuites(t)

	conn := testConn(VersionTLS12, nil)
	conn.ClientProtocolVersion = VersionTLS11
	conn.ServerProtocolVersion = VersionTLS13

	err := conn.SelectCipherSuite(wireFrom(
		TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
		TLS_FALLBACK_SCSV,
	))
	require.ErrorIs(t, err, ErrFallbackDetected)
	require.True(t, conn.Closed())
	require.Nil(t, conn.NegotiatedCipherSuite())
}

func TestFallbackSCSVIgnoredAtFullVersion(t *testing.T) {
	initSuites(t)

	conn := testConn(VersionTLS12, nil)
	conn.ServerProtocolVersion = VersionTLS12

	err := conn.SelectCipherSuite(wireFrom(
		TLS_FALLBACK_SCSV,
		TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	))
	require.NoError(t, err)
	require.False(t, conn.Closed())
}

func TestRenegotiationSCSVSetsFlag(t *testing.T) {
	initSuites(t)

	conn := testConn(VersionTLS12, nil)
	err := conn.SelectCipherSuite(wireFrom(TLS_EMPTY_RENEGOTIATION_INFO_SCSV))
	require.ErrorIs(t, err, ErrCipherNotSupported)
	require.True(t, conn.SecureRenegotiation)
}

func TestTLS13BarrierIsNotAVersionFallback(t *testing.T) {
	initSuites(t)

	// A TLS 1.2 connection offering only TLS 1.3 suites must fail with no
	// cipher: the barrier rejection is not a version-ceiling rejection, so
	// the higher-version fallback cannot rescue it.
	conn := testConn(VersionTLS12, PreferencesTestAllTLS13)
	err := conn.SelectCipherSuite(wireFrom(TLS_AES_128_GCM_SHA256))
	require.ErrorIs(t, err, ErrCipherNotSupported)
}

func TestHigherVersionMatchKeptAsLastResort(t *testing.T) {
	initSuites(t)

	policy := policyOf(t, Suite(ecdheRSAWithAES128GCMSHA256))
	conn := testConn(VersionTLS10, policy)

	// The only overlap requires TLS 1.2. It is still returned so upstream
	// can fail with a precise protocol-version error.
	err := conn.SelectCipherSuite(wireFrom(TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256))
	require.NoError(t, err)
	require.Equal(t, TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256, conn.NegotiatedCipherSuite().ID())
}

func TestSSLv2ClientHelloStride(t *testing.T) {
	initSuites(t)

	conn := testConn(VersionTLS12, nil)
	err := conn.SelectCipherSuiteSSLv2(sslv2WireFrom(
		TLS_RSA_WITH_AES_128_CBC_SHA,
		TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	))
	require.NoError(t, err)
	require.Equal(t, TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256, conn.NegotiatedCipherSuite().ID())
}

func TestSSLv3ShadowSubstitution(t *testing.T) {
	initSuites(t)

	policy := policyOf(t, Suite(rsaWithAES128CBCSHA))
	conn := testConn(VersionSSL30, policy)

	err := conn.SelectCipherSuite(wireFrom(TLS_RSA_WITH_AES_128_CBC_SHA))
	require.NoError(t, err)

	negotiated := conn.NegotiatedCipherSuite()
	require.Equal(t, TLS_RSA_WITH_AES_128_CBC_SHA, negotiated.ID())
	require.NotSame(t, rsaWithAES128CBCSHA, negotiated)
	require.Same(t, recordAlgAES128SSLv3SHA, negotiated.recordAlg)
}

func TestPSKPinsPRFHash(t *testing.T) {
	initSuites(t)

	conn := testConn(VersionTLS13, PreferencesTestAllTLS13)
	conn.ChosenPSK = &PSK{Identity: []byte("resumption"), HMACAlg: HMACSHA384}

	err := conn.SelectCipherSuite(wireFrom(
		TLS_AES_128_GCM_SHA256,
		TLS_AES_256_GCM_SHA384,
	))
	require.NoError(t, err)
	require.Equal(t, TLS_AES_256_GCM_SHA384, conn.NegotiatedCipherSuite().ID())
}

func TestAuthMethodFiltersCandidates(t *testing.T) {
	initSuites(t)

	// The RSA suite ranks first, so only the auth check can skip it.
	policy := policyOf(t,
		Suite(ecdheRSAWithAES128GCMSHA256),
		Suite(ecdheECDSAWithAES128GCMSHA256),
	)
	conn := testConn(VersionTLS12, policy)
	conn.CertificateTypes = []AuthMethod{AuthECDSA}

	err := conn.SelectCipherSuite(wireFrom(
		TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
		TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	))
	require.NoError(t, err)
	require.Equal(t, TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256, conn.NegotiatedCipherSuite().ID())
}

func TestECDHERequiresSharedCurve(t *testing.T) {
	initSuites(t)

	conn := testConn(VersionTLS12, nil)
	conn.SupportedCurves = nil

	err := conn.SelectCipherSuite(wireFrom(
		TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
		TLS_RSA_WITH_AES_128_GCM_SHA256,
	))
	require.NoError(t, err)
	require.Equal(t, TLS_RSA_WITH_AES_128_GCM_SHA256, conn.NegotiatedCipherSuite().ID())
}

func TestDHERequiresGroupParams(t *testing.T) {
	initSuites(t)

	policy := policyOf(t, Suite(dheRSAWithAES128GCMSHA256))
	wire := wireFrom(TLS_DHE_RSA_WITH_AES_128_GCM_SHA256)

	conn := testConn(VersionTLS12, policy)
	require.ErrorIs(t, conn.SelectCipherSuite(wire), ErrCipherNotSupported)

	conn = testConn(VersionTLS12, policy)
	conn.DHParams = &DHParams{P: []byte{0xff}, G: []byte{0x02}}
	require.NoError(t, conn.SelectCipherSuite(wire))
	require.Equal(t, TLS_DHE_RSA_WITH_AES_128_GCM_SHA256, conn.NegotiatedCipherSuite().ID())
}

func TestHybridKEMConfiguresConnection(t *testing.T) {
	initSuites(t)

	policy := policyOf(t, Suite(ecdheKyberRSAWithAES256GCMSHA384))
	conn := testConn(VersionTLS12, policy)

	err := conn.SelectCipherSuite(wireFrom(TLS_ECDHE_KYBER_RSA_WITH_AES_256_GCM_SHA384))
	require.NoError(t, err)
	require.Equal(t, X25519, conn.ChosenCurve())
	require.Equal(t, KEMKyber512R3, conn.ChosenKEM())
}

func TestSelectionIsDeterministic(t *testing.T) {
	initSuites(t)

	wire := wireFrom(
		TLS_CHACHA20_POLY1305_SHA256,
		TLS_AES_256_GCM_SHA384,
		TLS_AES_128_GCM_SHA256,
	)

	var got []uint16
	for i := 0; i < 3; i++ {
		conn := testConn(VersionTLS13, PreferencesTestAllEqualPreferenceTLS13)
		require.NoError(t, conn.SelectCipherSuite(wire))
		got = append(got, conn.NegotiatedCipherSuite().ID())
	}
	want := []uint16{
		TLS_CHACHA20_POLY1305_SHA256,
		TLS_CHACHA20_POLY1305_SHA256,
		TLS_CHACHA20_POLY1305_SHA256,
	}
	require.Empty(t, cmp.Diff(want, got))
}

func TestMalformedWireList(t *testing.T) {
	initSuites(t)

	conn := testConn(VersionTLS12, nil)
	require.Error(t, conn.SelectCipherSuite(nil))
	require.Error(t, conn.SelectCipherSuite([]byte{0xc0}))
}

func TestConfirmCipherSuite(t *testing.T) {
	initSuites(t)

	conn := testConn(VersionTLS12, nil)
	require.NoError(t, conn.ConfirmCipherSuite(TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256))
	require.Equal(t, TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256, conn.NegotiatedCipherSuite().ID())
}

func TestConfirmRejectsSuiteOutsideOffer(t *testing.T) {
	initSuites(t)

	policy := policyOf(t, Suite(ecdheRSAWithAES128GCMSHA256))
	conn := testConn(VersionTLS12, policy)

	err := conn.ConfirmCipherSuite(TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384)
	require.ErrorIs(t, err, ErrIllegalParameter)
}

func TestConfirmRejectsUnavailableSuite(t *testing.T) {
	SetPQEnabled(false)
	t.Cleanup(func() { SetPQEnabled(true) })
	initSuites(t)

	policy := policyOf(t, Suite(ecdheKyberRSAWithAES256GCMSHA384))
	conn := testConn(VersionTLS12, policy)

	err := conn.ConfirmCipherSuite(TLS_ECDHE_KYBER_RSA_WITH_AES_256_GCM_SHA384)
	require.ErrorIs(t, err, ErrCipherNotSupported)
}

func TestConfirmRejectsPSKHashMismatch(t *testing.T) {
	initSuites(t)

	conn := testConn(VersionTLS13, PreferencesTestAllTLS13)
	conn.ChosenPSK = &PSK{Identity: []byte("resumption"), HMACAlg: HMACSHA256}

	err := conn.ConfirmCipherSuite(TLS_AES_256_GCM_SHA384)
	require.ErrorIs(t, err, ErrCipherNotSupported)
	require.NoError(t, conn.ConfirmCipherSuite(TLS_AES_128_GCM_SHA256))
}

func TestConfirmPinsSuiteAcrossHelloRetry(t *testing.T) {
	initSuites(t)

	conn := testConn(VersionTLS13, PreferencesTestAllTLS13)
	require.NoError(t, conn.ConfirmCipherSuite(TLS_AES_128_GCM_SHA256))

	conn.HelloRetryRequest = true
	err := conn.ConfirmCipherSuite(TLS_AES_256_GCM_SHA384)
	require.ErrorIs(t, err, ErrIllegalParameter)
	require.NoError(t, conn.ConfirmCipherSuite(TLS_AES_128_GCM_SHA256))
}

func TestConfirmSubstitutesSSLv3Shadow(t *testing.T) {
	initSuites(t)

	policy := policyOf(t, Suite(rsaWithAES128CBCSHA))
	conn := testConn(VersionSSL30, policy)

	require.NoError(t, conn.ConfirmCipherSuite(TLS_RSA_WITH_AES_128_CBC_SHA))
	require.Same(t, recordAlgAES128SSLv3SHA, conn.NegotiatedCipherSuite().recordAlg)
}
