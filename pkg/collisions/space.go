package collisions

import "github.com/solarlune/resolv"

// TagHitbox marks the objects a HitSpace owns.
const TagHitbox = "hitbox"

// HitSpace resolves screen points to the owner of the hitbox drawn under them.
type HitSpace struct {
	space  *resolv.Space
	owners map[*resolv.Object]int
}

// NewHitSpace creates a hit space covering width x height pixels, bucketed
// into cellSize cells.
func NewHitSpace(width, height, cellSize int) *HitSpace {
	return &HitSpace{
		space:  resolv.NewSpace(width, height, cellSize, cellSize),
		owners: make(map[*resolv.Object]int),
	}
}

// Add registers a hitbox for owner.
func (h *HitSpace) Add(owner int, x, y, w, ht float64) {
	obj := resolv.NewObject(x, y, w, ht, TagHitbox)
	h.space.Add(obj)
	h.owners[obj] = owner
}

// Clear removes every hitbox.
func (h *HitSpace) Clear() {
	for obj := range h.owners {
		h.space.Remove(obj)
	}
	clear(h.owners)
}

// Len is the number of registered hitboxes.
func (h *HitSpace) Len() int {
	return len(h.owners)
}

// At returns the owner of the hitbox containing (x, y).
func (h *HitSpace) At(x, y float64) (int, bool) {
	probe := resolv.NewObject(x, y, 1, 1)
	h.space.Add(probe)
	defer h.space.Remove(probe)

	collision := probe.Check(0, 0, TagHitbox)
	if collision == nil {
		return 0, false
	}
	// the space only narrows down to shared cells
	for _, obj := range collision.Objects {
		if contains(obj, x, y) {
			return h.owners[obj], true
		}
	}
	return 0, false
}

func contains(obj *resolv.Object, x, y float64) bool {
	return x >= obj.Position.X && x < obj.Position.X+obj.Size.X &&
		y >= obj.Position.Y && y < obj.Position.Y+obj.Size.Y
}
