// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

//go:build btreedebug

package assert

import "fmt"

// Enabled reports whether debug assertions are compiled in.
const Enabled = true

// Truef panics with the formatted message if cond is false.
func Truef(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
