package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    Direction
		wantErr bool
	}{
		{"int long", 1, DirectionLong, false},
		{"int short", -1, DirectionShort, false},
		{"int flat", 0, DirectionFlat, false},
		{"int unmapped", 5, Direction(5), false},
		{"int64", int64(-1), DirectionShort, false},
		{"int8", int8(1), DirectionLong, false},
		{"uint", uint(1), DirectionLong, false},
		{"uint8", uint8(1), DirectionLong, false},
		{"uint64 unmapped", uint64(3), Direction(3), false},
		{"uintptr", uintptr(1), DirectionLong, false},
		{"typed direction", DirectionShort, DirectionShort, false},
		{"side buy", SideBuy, DirectionLong, false},
		{"side sell", SideSell, DirectionShort, false},
		{"unknown side", Side("HOLD"), 0, true},
		{"string rejected", "BUY", 0, true},
		{"float rejected", 1.0, 0, true},
		{"nil rejected", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DirectionOf(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrDirectionType)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDirectionOfErrorNamesOffendingType(t *testing.T) {
	_, err := DirectionOf("BUY")
	require.Error(t, err)
	require.Contains(t, err.Error(), "string")

	_, err = DirectionOf(1.5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "float64")
}

func TestDirectionSideShadow(t *testing.T) {
	side, ok := DirectionLong.Side()
	require.True(t, ok)
	require.Equal(t, SideBuy, side)

	side, ok = DirectionShort.Side()
	require.True(t, ok)
	require.Equal(t, SideSell, side)

	_, ok = DirectionFlat.Side()
	require.False(t, ok)

	_, ok = Direction(5).Side()
	require.False(t, ok)
}

func TestSideDirection(t *testing.T) {
	require.Equal(t, DirectionLong, SideBuy.Direction())
	require.Equal(t, DirectionShort, SideSell.Direction())
}

func TestDirectionLabel(t *testing.T) {
	require.Equal(t, "long", DirectionLong.Label())
	require.Equal(t, "short", DirectionShort.Label())
	require.Equal(t, "flat", DirectionFlat.Label())
	require.Equal(t, "long", Direction(3).Label())
}
