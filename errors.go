// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tls

import "errors"

// Negotiation failure kinds. These are stable sentinels: callers classify
// failures with errors.Is, and trace wrapping at the return sites preserves
// the chain.
var (
	// ErrCipherNotSupported indicates that no mutually acceptable cipher
	// suite exists, that an offered suite has no runnable implementation,
	// or that the suite's PRF hash conflicts with the chosen PSK.
	ErrCipherNotSupported = errors.New("tls: no usable cipher suite")

	// ErrIllegalParameter indicates the peer chose a suite outside our
	// offer, or changed its choice across a HelloRetryRequest.
	ErrIllegalParameter = errors.New("tls: illegal parameter")

	// ErrFallbackDetected indicates TLS_FALLBACK_SCSV was present while the
	// client negotiated a lower version than we support. See RFC 7507.
	ErrFallbackDetected = errors.New("tls: inappropriate fallback detected")

	// ErrInitialized indicates an attempt to change process-wide crypto
	// init behavior after initialization already ran.
	ErrInitialized = errors.New("tls: cipher suites already initialized")
)
