// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

import (
	"bytes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"math"

	"github.com/gravitational/trace"
)

// HMACAlg identifies the MAC paired with a record cipher, and doubles as the
// PRF/transcript hash identifier on cipher suites and PSKs. The SSLv3
// variants denote the legacy pad construction, not a different hash.
type HMACAlg uint8

const (
	HMACNone HMACAlg = iota
	HMACMD5
	HMACSHA1
	HMACSHA256
	HMACSHA384
	HMACSSLv3MD5
	HMACSSLv3SHA1
)

func (a HMACAlg) hashFunc() func() hash.Hash {
	switch a {
	case HMACMD5, HMACSSLv3MD5:
		return md5.New
	case HMACSHA1:
		return func() hash.Hash { return ctHash{sha1.New().(constantTimeHash)} }
	case HMACSSLv3SHA1:
		return sha1.New
	case HMACSHA256:
		return sha256.New
	case HMACSHA384:
		return sha512.New384
	}
	return nil
}

func (a HMACAlg) isSSLv3() bool {
	return a == HMACSSLv3MD5 || a == HMACSSLv3SHA1
}

func (a HMACAlg) String() string {
	switch a {
	case HMACNone:
		return "NONE"
	case HMACMD5:
		return "MD5"
	case HMACSHA1:
		return "SHA1"
	case HMACSHA256:
		return "SHA256"
	case HMACSHA384:
		return "SHA384"
	case HMACSSLv3MD5:
		return "SSLv3-MD5"
	case HMACSSLv3SHA1:
		return "SSLv3-SHA1"
	}
	return "UNKNOWN"
}

// nonceFlavor distinguishes the per-record nonce constructions. TLS 1.2
// AES-GCM prefixes an explicit nonce, TLS 1.2 ChaCha20-Poly1305 already uses
// the TLS 1.3 style construction per RFC 7905, and TLS 1.3 AEADs XOR the
// sequence number into a fixed mask.
type nonceFlavor uint8

const (
	nonceNone nonceFlavor = iota
	nonceTLS12AESGCM
	nonceTLS12ChaChaPoly
	nonceTLS13AEAD
)

const (
	// recordLimitUnbounded marks algorithms with no practical rekey
	// ceiling.
	recordLimitUnbounded = math.MaxUint64

	// tls13AESGCMRecordLimit is 2^24.5 full-size records, the point at
	// which RFC 8446, Section 5.5 requires a key update for AES-GCM.
	tls13AESGCMRecordLimit = 23726566
)

// A recordAlgorithm binds a bulk cipher to its MAC, nonce construction and
// encryption budget. Suites list their acceptable record algorithms most
// preferred first; the initializer picks the first runnable one.
type recordAlgorithm struct {
	cipher      *bulkCipher
	hmac        HMACAlg
	nonce       nonceFlavor
	recordLimit uint64
}

// mac builds the record MAC for this algorithm. SSLv3 variants use the
// legacy pad construction; everything else is a standard HMAC.
func (ra *recordAlgorithm) mac(key []byte) macFunction {
	if ra.hmac == HMACNone {
		return nil
	}
	if ra.hmac.isSSLv3() {
		return &sslv3MAC{
			h:   ra.hmac.hashFunc()(),
			key: append([]byte(nil), key...),
		}
	}
	return &hmacMAC{h: hmac.New(ra.hmac.hashFunc(), key)}
}

// newAEAD builds the record AEAD for this algorithm with its nonce flavor
// applied. It fails for CBC and stream algorithms, which pair a cipher with
// a separate MAC instead.
func (ra *recordAlgorithm) newAEAD(key, fixed []byte) (aead, error) {
	if ra.cipher.newAEAD == nil {
		return nil, trace.BadParameter("%s has no AEAD form", ra.cipher.name)
	}
	inner, err := ra.cipher.newAEAD(key)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return newRecordAEAD(ra.nonce, inner, fixed)
}

var (
	recordAlgRC4MD5 = &recordAlgorithm{
		cipher:      bulkRC4,
		hmac:        HMACMD5,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgRC4SSLv3MD5 = &recordAlgorithm{
		cipher:      bulkRC4,
		hmac:        HMACSSLv3MD5,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgRC4SHA = &recordAlgorithm{
		cipher:      bulkRC4,
		hmac:        HMACSHA1,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgRC4SSLv3SHA = &recordAlgorithm{
		cipher:      bulkRC4,
		hmac:        HMACSSLv3SHA1,
		recordLimit: recordLimitUnbounded,
	}

	recordAlg3DESSHA = &recordAlgorithm{
		cipher:      bulk3DES,
		hmac:        HMACSHA1,
		recordLimit: recordLimitUnbounded,
	}

	recordAlg3DESSSLv3SHA = &recordAlgorithm{
		cipher:      bulk3DES,
		hmac:        HMACSSLv3SHA1,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES128SHA = &recordAlgorithm{
		cipher:      bulkAES128,
		hmac:        HMACSHA1,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES128SSLv3SHA = &recordAlgorithm{
		cipher:      bulkAES128,
		hmac:        HMACSSLv3SHA1,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES128SHAComposite = &recordAlgorithm{
		cipher:      bulkAES128SHA,
		hmac:        HMACSHA1,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES128SHA256 = &recordAlgorithm{
		cipher:      bulkAES128,
		hmac:        HMACSHA256,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES128SHA256Composite = &recordAlgorithm{
		cipher:      bulkAES128SHA256,
		hmac:        HMACSHA256,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES256SHA = &recordAlgorithm{
		cipher:      bulkAES256,
		hmac:        HMACSHA1,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES256SSLv3SHA = &recordAlgorithm{
		cipher:      bulkAES256,
		hmac:        HMACSSLv3SHA1,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES256SHAComposite = &recordAlgorithm{
		cipher:      bulkAES256SHA,
		hmac:        HMACSHA1,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES256SHA256 = &recordAlgorithm{
		cipher:      bulkAES256,
		hmac:        HMACSHA256,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES256SHA256Composite = &recordAlgorithm{
		cipher:      bulkAES256SHA256,
		hmac:        HMACSHA256,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES256SHA384 = &recordAlgorithm{
		cipher:      bulkAES256,
		hmac:        HMACSHA384,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES128GCM = &recordAlgorithm{
		cipher:      bulkAES128GCM,
		hmac:        HMACNone,
		nonce:       nonceTLS12AESGCM,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgAES256GCM = &recordAlgorithm{
		cipher:      bulkAES256GCM,
		hmac:        HMACNone,
		nonce:       nonceTLS12AESGCM,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgChaCha20Poly1305 = &recordAlgorithm{
		cipher: bulkChaCha20Poly1305,
		hmac:   HMACNone,
		// Per RFC 7905, ChaCha20-Poly1305 already uses the nonce
		// construction expected in TLS 1.3. Give it a distinct 1.2
		// flavor in case this changes.
		nonce:       nonceTLS12ChaChaPoly,
		recordLimit: recordLimitUnbounded,
	}

	recordAlgTLS13AES128GCM = &recordAlgorithm{
		cipher:      bulkTLS13AES128GCM,
		hmac:        HMACNone,
		nonce:       nonceTLS13AEAD,
		recordLimit: tls13AESGCMRecordLimit,
	}

	recordAlgTLS13AES256GCM = &recordAlgorithm{
		cipher:      bulkTLS13AES256GCM,
		hmac:        HMACNone,
		nonce:       nonceTLS13AEAD,
		recordLimit: tls13AESGCMRecordLimit,
	}

	recordAlgTLS13ChaCha20Poly1305 = &recordAlgorithm{
		cipher:      bulkChaCha20Poly1305,
		hmac:        HMACNone,
		nonce:       nonceTLS13AEAD,
		recordLimit: recordLimitUnbounded,
	}
)

// A macFunction computes per-record MACs for the CBC and stream record
// algorithms. MAC appends the MAC of (seq, header, data) to the receiver's
// reused buffer, so the result is only valid until the next call; extra is
// hashed after the result is taken, purely to normalize timing.
type macFunction interface {
	Size() int
	MAC(seq, header, data, extra []byte) []byte
}

// aead is the record-protection interface the record layer consumes: a
// cipher.AEAD plus the number of explicit nonce bytes each record carries
// on the wire.
type aead interface {
	cipher.AEAD
	explicitNonceLen() int
}

const (
	aeadNonceLength   = 12
	noncePrefixLength = 4
)

// recordAEAD applies a record algorithm's nonce flavor to the bulk cipher's
// AEAD. The TLS 1.2 AES-GCM flavor appends an eight-byte explicit nonce to
// a four-byte fixed prefix; every other flavor XORs the record sequence
// number into a full-length fixed mask and sends nothing explicit.
type recordAEAD struct {
	flavor nonceFlavor
	fixed  [aeadNonceLength]byte
	inner  cipher.AEAD
}

func newRecordAEAD(flavor nonceFlavor, inner cipher.AEAD, fixed []byte) (*recordAEAD, error) {
	want := aeadNonceLength
	if flavor == nonceTLS12AESGCM {
		want = noncePrefixLength
	}
	if len(fixed) != want {
		return nil, trace.BadParameter("fixed nonce is %d bytes, want %d", len(fixed), want)
	}
	a := &recordAEAD{flavor: flavor, inner: inner}
	copy(a.fixed[:], fixed)
	return a, nil
}

func (a *recordAEAD) NonceSize() int {
	if a.flavor == nonceTLS12AESGCM {
		return aeadNonceLength - noncePrefixLength
	}
	return 8 // 64-bit sequence number
}

func (a *recordAEAD) Overhead() int { return a.inner.Overhead() }

func (a *recordAEAD) explicitNonceLen() int {
	if a.flavor == nonceTLS12AESGCM {
		return a.NonceSize()
	}
	return 0
}

// recordNonce assembles the full per-record nonce. The fixed part is copied,
// never mutated, so concurrent records cannot observe a half-patched mask.
func (a *recordAEAD) recordNonce(explicit []byte) [aeadNonceLength]byte {
	nonce := a.fixed
	if a.flavor == nonceTLS12AESGCM {
		copy(nonce[noncePrefixLength:], explicit)
		return nonce
	}
	off := aeadNonceLength - len(explicit)
	for i, b := range explicit {
		nonce[off+i] ^= b
	}
	return nonce
}

func (a *recordAEAD) Seal(out, nonce, plaintext, additionalData []byte) []byte {
	full := a.recordNonce(nonce)
	return a.inner.Seal(out, full[:], plaintext, additionalData)
}

func (a *recordAEAD) Open(out, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	full := a.recordNonce(nonce)
	return a.inner.Open(out, full[:], ciphertext, additionalData)
}

// hmacMAC is the standard TLS record MAC, an HMAC over the sequence number,
// record header and payload. RFC 2246, Section 6.2.3.
type hmacMAC struct {
	h   hash.Hash
	buf []byte
}

func (m *hmacMAC) Size() int { return m.h.Size() }

func (m *hmacMAC) MAC(seq, header, data, extra []byte) []byte {
	m.h.Reset()
	m.h.Write(seq)
	m.h.Write(header)
	m.h.Write(data)
	m.buf = m.h.Sum(m.buf[:0])
	if extra != nil {
		m.h.Write(extra)
	}
	return m.buf
}

// sslv3MAC implements the SSLv3 record MAC, which predates HMAC: two nested
// hashes keyed by concatenating the secret with fixed pad bytes (SSL 3.0
// draft, section 5.2.3.1). Only the type byte and the two length bytes of
// the record header participate. Timing is not normalized; the
// protocol-level POODLE flaw makes SSLv3 unsalvageable regardless.
type sslv3MAC struct {
	h   hash.Hash
	key []byte
	buf []byte
}

var (
	sslv3Pad1 = bytes.Repeat([]byte{0x36}, 48)
	sslv3Pad2 = bytes.Repeat([]byte{0x5c}, 48)
)

func (m *sslv3MAC) Size() int { return m.h.Size() }

func (m *sslv3MAC) padLen() int {
	if m.h.Size() == sha1.Size {
		return 40
	}
	return 48
}

func (m *sslv3MAC) MAC(seq, header, data, extra []byte) []byte {
	pad := m.padLen()

	m.h.Reset()
	m.h.Write(m.key)
	m.h.Write(sslv3Pad1[:pad])
	m.h.Write(seq)
	m.h.Write(header[:1])
	m.h.Write(header[3:5])
	m.h.Write(data)
	m.buf = m.h.Sum(m.buf[:0])

	m.h.Reset()
	m.h.Write(m.key)
	m.h.Write(sslv3Pad2[:pad])
	m.h.Write(m.buf)
	return m.h.Sum(m.buf[:0])
}

type constantTimeHash interface {
	hash.Hash
	ConstantTimeSum(b []byte) []byte
}

// ctHash swaps Sum for ConstantTimeSum, so an HMAC built on top of it never
// takes a data-dependent path.
type ctHash struct {
	constantTimeHash
}

func (h ctHash) Sum(b []byte) []byte { return h.ConstantTimeSum(b) }
