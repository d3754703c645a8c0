// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

// InOpenRange reports whether v lies strictly inside (lo, hi).
// Values equal to either bound are outside the range.
func InOpenRange(v, lo, hi float64) bool {
	return v > lo && v < hi
}

// Clamp constrains v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
