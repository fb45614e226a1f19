package player

import "github.com/KirkDiggler/delve-vitals/internal/domain/shared"

// ShapeNormal is the player's own shape
const ShapeNormal = "normal"

// Shape is a form the player can take
type Shape struct {
	Index int
	Name  string
}

// ShapeRegistry indexes shapes by stable index and by name
type ShapeRegistry struct {
	shapes []*Shape
	byName map[string]*Shape
}

// NewShapeRegistry builds a registry. The normal shape is always index 0.
func NewShapeRegistry(names ...string) *ShapeRegistry {
	r := &ShapeRegistry{byName: make(map[string]*Shape)}
	r.Register(ShapeNormal)
	for _, name := range names {
		r.Register(name)
	}
	return r
}

// DefaultShapes is the stock set of shapes
func DefaultShapes() *ShapeRegistry {
	return NewShapeRegistry("fox", "pukel", "bear", "vampire", "bat")
}

// Register adds a shape, returning the existing one if the name is taken
func (r *ShapeRegistry) Register(name string) *Shape {
	if s, ok := r.byName[name]; ok {
		return s
	}
	s := &Shape{Index: len(r.shapes), Name: name}
	r.shapes = append(r.shapes, s)
	r.byName[name] = s
	return s
}

// Lookup finds a shape by name
func (r *ShapeRegistry) Lookup(name string) (*Shape, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// ByIndex finds a shape by index
func (r *ShapeRegistry) ByIndex(index int) (*Shape, bool) {
	if index < 0 || index >= len(r.shapes) {
		return nil, false
	}
	return r.shapes[index], true
}

// IndexOf returns the index for a name, or -1
func (r *ShapeRegistry) IndexOf(name string) int {
	if s, ok := r.byName[name]; ok {
		return s.Index
	}
	return -1
}

// Len returns the number of registered shapes
func (r *ShapeRegistry) Len() int {
	return len(r.shapes)
}

// IsShapechanged reports whether the player is in any form but their own
func (p *Player) IsShapechanged() bool {
	return p.Shape != ShapeNormal
}

// Shapechange switches to a registered shape
func (p *Player) Shapechange(reg *ShapeRegistry, name string) bool {
	s, ok := reg.Lookup(name)
	if !ok {
		p.Msg("Could not find " + name + " shape!")
		return false
	}
	p.Shape = s.Name
	p.Upkeep.Update |= UpdateBonus
	p.Upkeep.Redraw |= RedrawTitle | RedrawMisc
	return true
}

// ResumeNormalShape reverts to the player's own shape
func (p *Player) ResumeNormalShape() {
	p.Shape = ShapeNormal
	p.Msg("You resume your usual shape.")

	p.Timed.Set(shared.TimedAttVamp, 0)

	p.Upkeep.Update |= UpdateBonus
	p.Upkeep.Redraw |= RedrawTitle | RedrawMisc
}
