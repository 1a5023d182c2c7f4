package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hashgo"
	"github.com/hupe1980/hashgo/fnv"
)

func TestSum(t *testing.T) {
	t.Run("FNV32", func(t *testing.T) {
		out, err := sum("fnv32", []byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%08x", fnv.Hash32(hashgo.Bytes("hello"))), out)
	})

	t.Run("FNV64", func(t *testing.T) {
		out, err := sum("fnv64", []byte("hello"))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%016x", fnv.Hash64(hashgo.Bytes("hello"))), out)
	})

	t.Run("Deterministic", func(t *testing.T) {
		for _, algo := range []string{"fnv32", "fnv64", "xxhash64", "siphash"} {
			a, err := sum(algo, []byte("payload"))
			require.NoError(t, err)
			b, err := sum(algo, []byte("payload"))
			require.NoError(t, err)
			assert.Equal(t, a, b, "algo=%s", algo)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := sum("md5", nil)
		assert.Error(t, err)
	})
}
