// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/rc4"

	"gitlab.com/yawning/bsaes.git"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/sys/cpu"
)

// hasAESHardware reports whether the CPU can run AES and GHASH in hardware.
// The composite record algorithms require it; everything else falls back to
// the constant-time software implementation.
var hasAESHardware = cpu.X86.HasAES && cpu.X86.HasPCLMULQDQ ||
	cpu.ARM64.HasAES && cpu.ARM64.HasPMULL ||
	cpu.S390X.HasAES && cpu.S390X.HasAESGCM

// aesNewCipher returns the hardware-backed AES implementation when the CPU
// supports it and the bit-sliced software implementation otherwise, so that
// AES stays constant-time on every build.
func aesNewCipher(key []byte) (cipher.Block, error) {
	if hasAESHardware {
		return aes.NewCipher(key)
	}
	return bsaes.NewCipher(key)
}

// A bulkCipher binds a record-protection cipher to its availability probe.
// Exactly one of cipher and newAEAD is set: cipher for stream/CBC
// algorithms that pair with an HMAC, newAEAD for self-authenticating ones.
// newAEAD yields the bare AEAD; the record algorithm layers its own nonce
// construction on top.
type bulkCipher struct {
	name      string
	keyLen    int
	ivLen     int
	available func() bool
	cipher    func(key, iv []byte, isRead bool) interface{}
	newAEAD   func(key []byte) (cipher.AEAD, error)
}

func alwaysAvailable() bool { return true }

func availableOutsideFIPS() bool { return !fipsMode }

func compositeAvailable() bool { return hasAESHardware }

func cipherRC4(key, iv []byte, isRead bool) interface{} {
	cipher, _ := rc4.NewCipher(key)
	return cipher
}

func cipher3DES(key, iv []byte, isRead bool) interface{} {
	block, _ := des.NewTripleDESCipher(key)
	if isRead {
		return cipher.NewCBCDecrypter(block, iv)
	}
	return cipher.NewCBCEncrypter(block, iv)
}

func cipherAES(key, iv []byte, isRead bool) interface{} {
	block, _ := aesNewCipher(key)
	if isRead {
		return cipher.NewCBCDecrypter(block, iv)
	}
	return cipher.NewCBCEncrypter(block, iv)
}

// cipherAESHardware is the cipher half of the composite CBC+HMAC record
// algorithms. Availability gating guarantees the hardware path.
func cipherAESHardware(key, iv []byte, isRead bool) interface{} {
	block, _ := aes.NewCipher(key)
	if isRead {
		return cipher.NewCBCDecrypter(block, iv)
	}
	return cipher.NewCBCEncrypter(block, iv)
}

func aeadAES(key []byte) (cipher.AEAD, error) {
	block, err := aesNewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func aeadChaCha20(key []byte) (cipher.AEAD, error) {
	return chacha20poly1305.New(key)
}

var (
	bulkRC4 = &bulkCipher{
		name:      "RC4",
		keyLen:    16,
		available: availableOutsideFIPS,
		cipher:    cipherRC4,
	}

	bulk3DES = &bulkCipher{
		name:      "3DES-EDE-CBC",
		keyLen:    24,
		ivLen:     8,
		available: alwaysAvailable,
		cipher:    cipher3DES,
	}

	bulkAES128 = &bulkCipher{
		name:      "AES-128-CBC",
		keyLen:    16,
		ivLen:     16,
		available: alwaysAvailable,
		cipher:    cipherAES,
	}

	bulkAES256 = &bulkCipher{
		name:      "AES-256-CBC",
		keyLen:    32,
		ivLen:     16,
		available: alwaysAvailable,
		cipher:    cipherAES,
	}

	// Composite hardware forms. These always use the AES hardware
	// implementation and only exist on AES hardware; the HMAC is computed
	// by the record algorithm, as for the forms above. The initializer
	// prefers them over the generic AES forms above.
	bulkAES128SHA = &bulkCipher{
		name:      "AES-128-CBC-HMAC-SHA1",
		keyLen:    16,
		ivLen:     16,
		available: compositeAvailable,
		cipher:    cipherAESHardware,
	}

	bulkAES256SHA = &bulkCipher{
		name:      "AES-256-CBC-HMAC-SHA1",
		keyLen:    32,
		ivLen:     16,
		available: compositeAvailable,
		cipher:    cipherAESHardware,
	}

	bulkAES128SHA256 = &bulkCipher{
		name:      "AES-128-CBC-HMAC-SHA256",
		keyLen:    16,
		ivLen:     16,
		available: compositeAvailable,
		cipher:    cipherAESHardware,
	}

	bulkAES256SHA256 = &bulkCipher{
		name:      "AES-256-CBC-HMAC-SHA256",
		keyLen:    32,
		ivLen:     16,
		available: compositeAvailable,
		cipher:    cipherAESHardware,
	}

	bulkAES128GCM = &bulkCipher{
		name:      "AES-128-GCM",
		keyLen:    16,
		available: alwaysAvailable,
		newAEAD:   aeadAES,
	}

	bulkAES256GCM = &bulkCipher{
		name:      "AES-256-GCM",
		keyLen:    32,
		available: alwaysAvailable,
		newAEAD:   aeadAES,
	}

	bulkTLS13AES128GCM = &bulkCipher{
		name:      "AES-128-GCM",
		keyLen:    16,
		available: alwaysAvailable,
		newAEAD:   aeadAES,
	}

	bulkTLS13AES256GCM = &bulkCipher{
		name:      "AES-256-GCM",
		keyLen:    32,
		available: alwaysAvailable,
		newAEAD:   aeadAES,
	}

	bulkChaCha20Poly1305 = &bulkCipher{
		name:      "CHACHA20-POLY1305",
		keyLen:    32,
		available: availableOutsideFIPS,
		newAEAD:   aeadChaCha20,
	}
)
