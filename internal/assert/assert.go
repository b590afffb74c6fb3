// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

// Package assert provides precondition checks for the slot array and
// node engine. Checks only run when the module is built with the
// "btreedebug" tag; release builds compile them out entirely, using
// two files selected by that one tag (assert_debug.go and
// assert_release.go).
package assert
