package radixsort

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint64ScenarioFromSpec(t *testing.T) {
	data := []uint64{1, 17342, 2, 8, 6, 5, 43, 2, 1, 255, 3}
	Uint64(data, false)
	require.Equal(t, []uint64{1, 1, 2, 2, 3, 5, 6, 8, 43, 255, 17342}, data)
}

func TestUint64Descending(t *testing.T) {
	data := []uint64{1, 17342, 2, 8, 6, 5, 43, 2, 1, 255, 3}
	Uint64(data, true)
	require.Equal(t, []uint64{17342, 255, 43, 8, 6, 5, 3, 2, 2, 1, 1}, data)
}

func TestUint64Idempotent(t *testing.T) {
	src := randomUint64s(5000)
	data := slices.Clone(src)
	Uint64(data, false)
	once := slices.Clone(data)
	Uint64(data, false)
	require.Equal(t, once, data)
}

func TestUint64IsStableSortedPermutation(t *testing.T) {
	data := randomUint64s(5000)
	want := slices.Clone(data)
	slices.Sort(want)

	Uint64(data, false)
	require.Equal(t, want, data)
}

func TestUint32SortedPermutation(t *testing.T) {
	n := 4000
	data := make([]uint32, n)
	r := rand.New(rand.NewSource(7))
	for i := range data {
		data[i] = r.Uint32()
	}
	want := slices.Clone(data)
	slices.Sort(want)

	Uint32(data, false)
	require.Equal(t, want, data)
}

func TestUint8And16CountingSort(t *testing.T) {
	a := []uint8{5, 2, 2, 0, 255, 1}
	Uint8(a, false)
	require.Equal(t, []uint8{0, 1, 2, 2, 5, 255}, a)

	b := []uint16{500, 2, 65535, 0, 500}
	Uint16(b, false)
	require.Equal(t, []uint16{0, 2, 500, 500, 65535}, b)
}

func TestSortDispatchesBySize(t *testing.T) {
	small := []uint64{9, 4, 7, 1}
	Sort(small, false)
	require.Equal(t, []uint64{1, 4, 7, 9}, small)

	medium := randomUint64s(10000)
	want := slices.Clone(medium)
	slices.Sort(want)
	Sort(medium, false)
	require.Equal(t, want, medium)
}

func randomUint64s(n int) []uint64 {
	r := rand.New(rand.NewSource(42))
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.Uint64() % (1 << 40) // keep within realistic key ranges
	}
	return out
}
