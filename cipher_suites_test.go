// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogSortedByID(t *testing.T) {
	for i := 1; i < len(allCipherSuites); i++ {
		prev, cur := allCipherSuites[i-1], allCipherSuites[i]
		require.Less(t, prev.id, cur.id,
			"catalog out of order: %s before %s", prev.name, cur.name)
	}
}

func TestCipherSuiteByID(t *testing.T) {
	for _, suite := range allCipherSuites {
		found, err := CipherSuiteByID(suite.id)
		require.NoError(t, err)
		require.Same(t, suite, found)
	}

	for _, id := range []uint16{
		0x0000,
		0x0001,
		TLS_FALLBACK_SCSV,
		TLS_EMPTY_RENEGOTIATION_INFO_SCSV,
		0x5601,
		0xffff,
	} {
		_, err := CipherSuiteByID(id)
		require.ErrorIs(t, err, ErrCipherNotSupported, "id 0x%04X", id)
	}
}

func TestTLS13SuitesCarryNoKeyExchange(t *testing.T) {
	for _, suite := range allCipherSuites {
		if suite.minVersion >= VersionTLS13 {
			require.Nil(t, suite.kex, "%s", suite.name)
		} else {
			require.NotNil(t, suite.kex, "%s", suite.name)
		}
	}
}

func TestRequiresECCExtension(t *testing.T) {
	require.True(t, tls13AES128GCMSHA256.RequiresECCExtension())
	require.True(t, ecdheRSAWithAES128GCMSHA256.RequiresECCExtension())
	require.True(t, ecdheKyberRSAWithAES256GCMSHA384.RequiresECCExtension())
	require.False(t, rsaWithAES128CBCSHA.RequiresECCExtension())
	require.False(t, dheRSAWithAES128GCMSHA256.RequiresECCExtension())
}

func TestRequiresPQExtension(t *testing.T) {
	require.True(t, ecdheKyberRSAWithAES256GCMSHA384.RequiresPQExtension())
	require.False(t, ecdheRSAWithAES128GCMSHA256.RequiresPQExtension())
	require.False(t, tls13AES128GCMSHA256.RequiresPQExtension())
}

func TestCipherSuiteName(t *testing.T) {
	require.Equal(t, "ECDHE-RSA-AES128-GCM-SHA256", CipherSuiteName(TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256))
	require.Equal(t, "TLS_AES_128_GCM_SHA256", CipherSuiteName(TLS_AES_128_GCM_SHA256))
	require.Equal(t, "0x5600", CipherSuiteName(TLS_FALLBACK_SCSV))
}
