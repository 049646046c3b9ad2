// Copyright 2026 The Firelight Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides firelight's CBOR encoding for highlight span
// export. Encoding uses Core Deterministic Encoding so identical
// spans always serialize to identical bytes regardless of process or
// platform.
package codec
