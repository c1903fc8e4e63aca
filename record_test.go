// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

import (
	"crypto/cipher"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordAlgorithmMACs(t *testing.T) {
	key := make([]byte, 20)

	mac := recordAlgAES128SHA.mac(key)
	require.NotNil(t, mac)
	require.Equal(t, 20, mac.Size())

	mac = recordAlgAES128SHA256.mac(key)
	require.Equal(t, 32, mac.Size())

	mac = recordAlgAES256SHA384.mac(key)
	require.Equal(t, 48, mac.Size())

	// AEAD algorithms carry no separate MAC.
	require.Nil(t, recordAlgAES128GCM.mac(key))
	require.Nil(t, recordAlgTLS13AES128GCM.mac(key))
}

func TestSSLv3MACUsesLegacyPadConstruction(t *testing.T) {
	key := make([]byte, 20)
	seq := make([]byte, 8)
	header := []byte{0x17, 0x03, 0x00, 0x00, 0x05}
	data := []byte("hello")

	legacy := recordAlgAES128SSLv3SHA.mac(key)
	modern := recordAlgAES128SHA.mac(key)
	require.IsType(t, &sslv3MAC{}, legacy)
	require.IsType(t, &hmacMAC{}, modern)

	legacySum := legacy.MAC(seq, header, data, nil)
	modernSum := modern.MAC(seq, header, data, nil)
	require.Equal(t, 20, len(legacySum))
	require.NotEqual(t, legacySum, modernSum)
}

func TestAEADNonceFlavors(t *testing.T) {
	key := make([]byte, 16)

	// TLS 1.2 AES-GCM prefixes a four-byte fixed nonce and sends eight
	// explicit bytes per record.
	prefix, err := recordAlgAES128GCM.newAEAD(key, make([]byte, noncePrefixLength))
	require.NoError(t, err)
	require.Equal(t, 8, prefix.explicitNonceLen())

	// TLS 1.3 AEADs and ChaCha20-Poly1305 XOR the sequence number into a
	// full-size mask and send nothing explicit.
	xored, err := recordAlgTLS13AES128GCM.newAEAD(key, make([]byte, aeadNonceLength))
	require.NoError(t, err)
	require.Equal(t, 0, xored.explicitNonceLen())

	chacha, err := recordAlgChaCha20Poly1305.newAEAD(make([]byte, 32), make([]byte, aeadNonceLength))
	require.NoError(t, err)
	require.Equal(t, 0, chacha.explicitNonceLen())

	// CBC and stream algorithms have no AEAD form.
	_, err = recordAlgAES128SHA.newAEAD(key, nil)
	require.Error(t, err)

	// The fixed part must match the flavor's length.
	_, err = recordAlgAES128GCM.newAEAD(key, make([]byte, aeadNonceLength))
	require.Error(t, err)
	_, err = recordAlgTLS13AES128GCM.newAEAD(key, make([]byte, noncePrefixLength))
	require.Error(t, err)
}

func TestAEADSealOpenRoundTrip(t *testing.T) {
	key := make([]byte, 16)
	nonce := make([]byte, 8)
	plaintext := []byte("application data")
	additional := []byte{0x17, 0x03, 0x03}

	sealer, err := recordAlgTLS13AES128GCM.newAEAD(key, make([]byte, aeadNonceLength))
	require.NoError(t, err)
	opener, err := recordAlgTLS13AES128GCM.newAEAD(key, make([]byte, aeadNonceLength))
	require.NoError(t, err)

	sealed := sealer.Seal(nil, nonce, plaintext, additional)
	opened, err := opener.Open(nil, nonce, sealed, additional)
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)

	_, err = opener.Open(nil, nonce, sealed, []byte{0x15, 0x03, 0x03})
	require.Error(t, err)
}

func TestCBCAndStreamConstructors(t *testing.T) {
	iv := make([]byte, 16)

	enc := bulkAES128.cipher(make([]byte, 16), iv, false)
	require.Implements(t, (*cipher.BlockMode)(nil), enc)
	dec := bulkAES128.cipher(make([]byte, 16), iv, true)
	require.Implements(t, (*cipher.BlockMode)(nil), dec)

	tdes := bulk3DES.cipher(make([]byte, 24), iv[:8], false)
	require.Implements(t, (*cipher.BlockMode)(nil), tdes)

	stream := bulkRC4.cipher(make([]byte, 16), nil, false)
	require.NotNil(t, stream)
}

func TestRecordLimits(t *testing.T) {
	// TLS 1.3 AES-GCM has a finite encryption budget per RFC 8446,
	// Section 5.5; everything else is effectively unlimited.
	require.EqualValues(t, tls13AESGCMRecordLimit, recordAlgTLS13AES128GCM.recordLimit)
	require.EqualValues(t, tls13AESGCMRecordLimit, recordAlgTLS13AES256GCM.recordLimit)
	require.EqualValues(t, uint64(recordLimitUnbounded), recordAlgTLS13ChaCha20Poly1305.recordLimit)
	require.EqualValues(t, uint64(recordLimitUnbounded), recordAlgAES128GCM.recordLimit)
	require.EqualValues(t, uint64(recordLimitUnbounded), recordAlgAES128SHA.recordLimit)
}
