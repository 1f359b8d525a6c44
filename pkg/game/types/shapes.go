package types

import "fmt"

// ShapeType identifies a shape family in the piece catalogue.
type ShapeType uint8

const (
	ShapeLine3 ShapeType = iota
	ShapeLine4
	ShapeLine5
	ShapeSquare2
	ShapeRect2x3
	ShapeSquare3
	ShapeZ
	ShapeSmallL
	ShapeBigL
	ShapeT
	// ShapeCustom marks pieces built from explicit offsets rather than the catalogue.
	ShapeCustom
)

func (s ShapeType) String() string {
	switch s {
	case ShapeLine3:
		return "1x3"
	case ShapeLine4:
		return "1x4"
	case ShapeLine5:
		return "1x5"
	case ShapeSquare2:
		return "2x2"
	case ShapeRect2x3:
		return "2x3"
	case ShapeSquare3:
		return "3x3"
	case ShapeZ:
		return "Z_shape_2x3"
	case ShapeSmallL:
		return "L_shape_2x3"
	case ShapeBigL:
		return "L_shape_3x3"
	case ShapeT:
		return "T_shape_2x3"
	case ShapeCustom:
		return "custom"
	}
	return "unknown"
}

// Offset is a cell position relative to a piece's anchor.
type Offset struct {
	Row int
	Col int
}

// catalogue holds every drawable shape in rotation 0.
var catalogue = map[ShapeType][]Offset{
	ShapeLine3:   {{0, 0}, {0, 1}, {0, 2}},
	ShapeLine4:   {{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	ShapeLine5:   {{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}},
	ShapeSquare2: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	ShapeRect2x3: {{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}},
	ShapeSquare3: {{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	ShapeZ:       {{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	ShapeSmallL:  {{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	ShapeBigL:    {{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}},
	ShapeT:       {{0, 1}, {1, 0}, {1, 1}, {1, 2}},
}

// ShapeTypes returns the catalogue shape types in a stable order.
func ShapeTypes() []ShapeType {
	return []ShapeType{
		ShapeLine3,
		ShapeLine4,
		ShapeLine5,
		ShapeSquare2,
		ShapeRect2x3,
		ShapeSquare3,
		ShapeZ,
		ShapeSmallL,
		ShapeBigL,
		ShapeT,
	}
}

// ShapeOffsets returns the offsets of a catalogue shape turned clockwise by
// rotation quarter turns.
func ShapeOffsets(shape ShapeType, rotation int) ([]Offset, error) {
	base, ok := catalogue[shape]
	if !ok {
		return nil, fmt.Errorf("unknown shape type: %s", shape)
	}
	return rotate(base, rotation), nil
}

// rotate turns offsets clockwise one quarter at a time: (r, c) -> (c, maxRow-r).
func rotate(offsets []Offset, times int) []Offset {
	result := make([]Offset, len(offsets))
	copy(result, offsets)
	times = ((times % 4) + 4) % 4
	for i := 0; i < times; i++ {
		maxRow := 0
		for _, o := range result {
			if o.Row > maxRow {
				maxRow = o.Row
			}
		}
		for j, o := range result {
			result[j] = Offset{Row: o.Col, Col: maxRow - o.Row}
		}
	}
	return normalize(result)
}

// normalize shifts offsets so the smallest row and column are 0.
func normalize(offsets []Offset) []Offset {
	if len(offsets) == 0 {
		return offsets
	}
	minRow, minCol := offsets[0].Row, offsets[0].Col
	for _, o := range offsets[1:] {
		minRow = min(minRow, o.Row)
		minCol = min(minCol, o.Col)
	}
	for i := range offsets {
		offsets[i].Row -= minRow
		offsets[i].Col -= minCol
	}
	return offsets
}
