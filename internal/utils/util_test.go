package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRuneByteConversions(t *testing.T) {
	line := []byte("a𝗯c") // 𝗯 is four bytes
	require.Equal(t, 0, RuneIndexToByteOffset(line, 0))
	require.Equal(t, 1, RuneIndexToByteOffset(line, 1))
	require.Equal(t, 5, RuneIndexToByteOffset(line, 2))
	require.Equal(t, 6, RuneIndexToByteOffset(line, 3))
	require.Equal(t, -1, RuneIndexToByteOffset(line, 4))

	require.Equal(t, 2, ByteOffsetToRuneIndex(line, 5))
	require.Equal(t, 1, ByteOffsetToRuneIndex(line, 3))
	require.Equal(t, 3, ByteOffsetToRuneIndex(line, 99))
}

func TestDebouncerRunsLastCallOnce(t *testing.T) {
	var d Debouncer
	var calls, last atomic.Int32
	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Debounce(20*time.Millisecond, func() {
			calls.Add(1)
			last.Store(n)
		})
	}
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.Equal(t, int32(5), last.Load())
}

func TestDebouncerStop(t *testing.T) {
	var d Debouncer
	var calls atomic.Int32
	d.Debounce(10*time.Millisecond, func() { calls.Add(1) })
	d.Stop()
	time.Sleep(40 * time.Millisecond)
	require.Zero(t, calls.Load())
}
