package integer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypesMatch(t *testing.T) {
	for b := 0; b < 256; b++ {
		matched := 0
		for _, typ := range Types {
			if typ.Match(byte(b)) {
				matched++
			}
		}

		typ, ok := Types.Match(byte(b))
		if b < 0b_0000_1000 {
			require.False(t, ok, "%08b", b)
			require.Equal(t, 0, matched, "%08b", b)
			continue
		}

		require.True(t, ok, "%08b", b)
		require.Equal(t, 1, matched, "%08b", b)
		require.Equal(t, byte(b)&^typ.Mask, typ.Prefix, "%08b", b)
	}
}
