// Copyright (c) 2025 obtree authors
// SPDX-License-Identifier: MIT

package obtree_test

import (
	"cmp"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/conradludgate/obtree"
	"github.com/conradludgate/obtree/internal/btreefuzz"
)

func checkInvariants(t *testing.T, tr *obtree.Tree[int], m int) {
	t.Helper()

	shape, err := btreefuzz.ParseDump(tr.String())
	if err != nil {
		t.Fatalf("ParseDump: %v", err)
	}
	if err := btreefuzz.CheckBalanced(shape); err != nil {
		t.Fatal(err)
	}
	if tr.Len() > 0 {
		half := m / 2
		if err := btreefuzz.CheckFanout(shape, m, half, true); err != nil {
			t.Fatal(err)
		}
	}
}

func TestPropertyRandomPermutationFoundAndOrdered(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(1, 2))
	const n = 300
	const m = 4

	keys := prng.Perm(n)
	tr := obtree.New[int](m, cmp.Compare[int])
	for _, k := range keys {
		tr.Insert(k)
		checkInvariants(t, tr, m)
	}

	for k := 0; k < n; k++ {
		if v, ok := tr.GetKey(k); !ok || v != k {
			t.Fatalf("GetKey(%d) = %v, %v, want %d, true", k, v, ok, k)
		}
	}
	if _, ok := tr.GetKey(-1); ok {
		t.Fatalf("GetKey(-1) found a key that was never inserted")
	}
	if _, ok := tr.GetKey(n); ok {
		t.Fatalf("GetKey(%d) found a key that was never inserted", n)
	}

	min, _ := tr.First()
	max, _ := tr.Last()
	if min != 0 || max != n-1 {
		t.Fatalf("First/Last = %d, %d, want 0, %d", min, max, n-1)
	}
}

func TestPropertyInsertRemoveSurvivingSetMatches(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(3, 4))
	const n = 400
	const m = 6

	inserts := prng.Perm(n)
	removes := make([]int, n/2)
	copy(removes, inserts[:n/2])
	prng.Shuffle(len(removes), func(i, j int) { removes[i], removes[j] = removes[j], removes[i] })

	tr := obtree.New[int](m, cmp.Compare[int])
	for _, v := range inserts {
		tr.Insert(v)
	}
	checkInvariants(t, tr, m)

	want := map[int]bool{}
	for _, v := range inserts {
		want[v] = true
	}
	for _, v := range removes {
		if _, ok := tr.RemoveKey(v); !ok {
			t.Fatalf("RemoveKey(%d) reported not found for an inserted key", v)
		}
		delete(want, v)
		checkInvariants(t, tr, m)
	}

	if tr.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", tr.Len(), len(want))
	}
	for v := range want {
		if _, ok := tr.GetKey(v); !ok {
			t.Fatalf("GetKey(%d) missing a surviving key", v)
		}
	}
}

func TestPropertyRemoveFirstAscendingOrder(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(5, 6))
	const n = 250
	const m = 4

	keys := prng.Perm(n)
	tr := obtree.New[int](m, cmp.Compare[int])
	for _, k := range keys {
		tr.Insert(k)
	}

	sorted := append([]int(nil), keys...)
	sort.Ints(sorted)

	for _, want := range sorted {
		got, ok := tr.RemoveFirst()
		if !ok || got != want {
			t.Fatalf("RemoveFirst() = %v, %v, want %v, true", got, ok, want)
		}
	}
}
