package types

import (
	"testing"

	"github.com/cbodonnell/blockblast/pkg/game/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPiece_Rotations(t *testing.T) {
	tests := []struct {
		name     string
		shape    ShapeType
		rotation int
		want     []Offset
		width    int
		height   int
	}{
		{
			name:   "horizontal line",
			shape:  ShapeLine3,
			want:   []Offset{{0, 0}, {0, 1}, {0, 2}},
			width:  3,
			height: 1,
		},
		{
			name:     "line turned once",
			shape:    ShapeLine3,
			rotation: 1,
			want:     []Offset{{0, 0}, {1, 0}, {2, 0}},
			width:    1,
			height:   3,
		},
		{
			name:     "small L turned once",
			shape:    ShapeSmallL,
			rotation: 1,
			want:     []Offset{{0, 1}, {0, 0}, {1, 0}, {2, 0}},
			width:    2,
			height:   3,
		},
		{
			name:     "T upside down",
			shape:    ShapeT,
			rotation: 2,
			want:     []Offset{{1, 1}, {0, 2}, {0, 1}, {0, 0}},
			width:    3,
			height:   2,
		},
		{
			name:     "rotation wraps",
			shape:    ShapeLine3,
			rotation: 5,
			want:     []Offset{{0, 0}, {1, 0}, {2, 0}},
			width:    1,
			height:   3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPiece(1, tt.shape, tt.rotation, 1)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, p.Offsets())
			assert.Equal(t, tt.width, p.Width())
			assert.Equal(t, tt.height, p.Height())
			assert.Equal(t, tt.rotation%constants.Rotations, p.Rotation)
		})
	}
}

func TestNewPiece_NormalizedForEveryShape(t *testing.T) {
	for _, shape := range ShapeTypes() {
		base, err := ShapeOffsets(shape, 0)
		require.NoError(t, err)
		for rotation := 0; rotation < constants.Rotations; rotation++ {
			p, err := NewPiece(1, shape, rotation, 1)
			require.NoError(t, err)

			minRow, minCol := p.Height(), p.Width()
			for _, o := range p.Offsets() {
				minRow = min(minRow, o.Row)
				minCol = min(minCol, o.Col)
				assert.True(t, p.Covers(o.Row, o.Col))
			}
			assert.Zero(t, minRow, "%s", p)
			assert.Zero(t, minCol, "%s", p)
			assert.Equal(t, len(base), p.CellCount(), "%s", p)
		}
	}
}

func TestNewPiece_Errors(t *testing.T) {
	_, err := NewPiece(1, ShapeCustom, 0, 1)
	assert.Error(t, err)

	_, err = NewPiece(1, ShapeLine3, 0, TagEmpty)
	assert.Error(t, err)

	_, err = NewPieceFromOffsets(1, nil, 1)
	assert.Error(t, err)

	_, err = NewPieceFromOffsets(1, []Offset{{0, 0}, {0, 0}}, 1)
	assert.Error(t, err)
}

func TestNewPieceFromOffsets_Normalizes(t *testing.T) {
	p, err := NewPieceFromOffsets(3, []Offset{{2, 3}, {3, 3}, {3, 4}}, 4)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Offset{{0, 0}, {1, 0}, {1, 1}}, p.Offsets())
	assert.Equal(t, ShapeCustom, p.Shape)
	assert.Equal(t, 2, p.Width())
	assert.Equal(t, 2, p.Height())
}

func TestPiece_OffsetsIsACopy(t *testing.T) {
	p, err := NewPiece(1, ShapeSquare2, 0, 1)
	require.NoError(t, err)
	offsets := p.Offsets()
	offsets[0] = Offset{Row: 5, Col: 5}
	assert.False(t, p.Covers(5, 5))
}

func TestLines_Merge(t *testing.T) {
	a := Lines{Rows: []int{4, 1}, Cols: []int{2}}
	b := Lines{Rows: []int{1, 3}}
	assert.Equal(t, Lines{Rows: []int{1, 3, 4}, Cols: []int{2}}, a.Merge(b))
	assert.Equal(t, 4, a.Merge(b).Count())
	assert.True(t, Lines{}.Merge(Lines{}).Empty())
}
