package track

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/framewise/motionsig/pkg/geometry"
)

func TestNewDetection(t *testing.T) {
	d, err := NewDetection(7, geometry.New(0.25, 0.5), geometry.New(0.1, 0.2), 1500)
	require.NoError(t, err)
	require.Equal(t, uint64(7), d.ObjectID)
	require.Equal(t, geometry.New(0.25, 0.5), d.Position)
	require.Equal(t, geometry.New(0.1, 0.2), d.Dimensions)
	require.Equal(t, int64(1500), d.Timestamp)
}

func TestNewDetection_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		position   geometry.Vec2
		dimensions geometry.Vec2
		timestamp  int64
		wantErr    error
	}{
		{
			name:       "nan position",
			position:   geometry.New(math.NaN(), 0.5),
			dimensions: geometry.New(0.1, 0.1),
			timestamp:  100,
			wantErr:    geometry.ErrNotFinite,
		},
		{
			name:       "infinite dimensions",
			position:   geometry.New(0.5, 0.5),
			dimensions: geometry.New(math.Inf(1), 0.1),
			timestamp:  100,
			wantErr:    geometry.ErrNotFinite,
		},
		{
			name:       "negative timestamp",
			position:   geometry.New(0.5, 0.5),
			dimensions: geometry.New(0.1, 0.1),
			timestamp:  -1,
			wantErr:    ErrNegativeTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDetection(1, tt.position, tt.dimensions, tt.timestamp)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
