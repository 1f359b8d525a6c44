package types

import "fmt"

// Tag is an opaque identity attached to a piece and copied onto the cells it fills.
// The core only compares tags; the shell decides what they look like.
type Tag uint8

// TagEmpty marks an unoccupied cell. It is never assigned to a piece.
const TagEmpty Tag = 0

// DefaultTags is the palette pieces draw their tag from.
var DefaultTags = []Tag{1, 2, 3, 4, 5, 6, 7, 8}

// Piece is an immutable shape placed as a unit.
type Piece struct {
	// ID distinguishes pieces within a session, including pieces of the same shape.
	ID uint64
	// Shape is the catalogue family of the piece.
	Shape ShapeType
	// Rotation is the number of clockwise quarter turns applied to the shape.
	Rotation int
	// Tag is copied onto every cell the piece fills.
	Tag Tag

	offsets []Offset
	width   int
	height  int
}

// NewPiece resolves a catalogue shape and rotation into a piece.
func NewPiece(id uint64, shape ShapeType, rotation int, tag Tag) (Piece, error) {
	if tag == TagEmpty {
		return Piece{}, fmt.Errorf("piece %d cannot use the empty tag", id)
	}
	offsets, err := ShapeOffsets(shape, rotation)
	if err != nil {
		return Piece{}, fmt.Errorf("failed to resolve shape for piece %d: %w", id, err)
	}
	return newPiece(id, shape, ((rotation%4)+4)%4, tag, offsets), nil
}

// NewPieceFromOffsets builds a piece with an arbitrary footprint.
func NewPieceFromOffsets(id uint64, offsets []Offset, tag Tag) (Piece, error) {
	if tag == TagEmpty {
		return Piece{}, fmt.Errorf("piece %d cannot use the empty tag", id)
	}
	if len(offsets) == 0 {
		return Piece{}, fmt.Errorf("piece %d has no cells", id)
	}
	seen := make(map[Offset]bool, len(offsets))
	owned := make([]Offset, 0, len(offsets))
	for _, o := range offsets {
		if seen[o] {
			return Piece{}, fmt.Errorf("piece %d repeats offset (%d, %d)", id, o.Row, o.Col)
		}
		seen[o] = true
		owned = append(owned, o)
	}
	return newPiece(id, ShapeCustom, 0, tag, normalize(owned)), nil
}

func newPiece(id uint64, shape ShapeType, rotation int, tag Tag, offsets []Offset) Piece {
	p := Piece{
		ID:       id,
		Shape:    shape,
		Rotation: rotation,
		Tag:      tag,
		offsets:  offsets,
	}
	for _, o := range offsets {
		p.width = max(p.width, o.Col+1)
		p.height = max(p.height, o.Row+1)
	}
	return p
}

// Offsets returns a copy of the piece's relative cells.
func (p Piece) Offsets() []Offset {
	out := make([]Offset, len(p.offsets))
	copy(out, p.offsets)
	return out
}

// CellCount is the number of cells the piece covers.
func (p Piece) CellCount() int {
	return len(p.offsets)
}

// Width is the number of columns spanned by the piece.
func (p Piece) Width() int {
	return p.width
}

// Height is the number of rows spanned by the piece.
func (p Piece) Height() int {
	return p.height
}

// Covers reports whether the relative cell (row, col) is part of the piece.
func (p Piece) Covers(row, col int) bool {
	for _, o := range p.offsets {
		if o.Row == row && o.Col == col {
			return true
		}
	}
	return false
}

func (p Piece) String() string {
	return fmt.Sprintf("piece %d (%s, rotation %d)", p.ID, p.Shape, p.Rotation)
}
