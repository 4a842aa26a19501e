// Package diagram extracts shapes and connectors from draw.io diagram XML.
//
// The loader performs structural extraction only: cell ids, styles, absolute
// geometry, decoded text and connector endpoint references. Deciding what a
// shape means is left to the classify package.
package diagram

import (
	"math"
	"strings"
)

// Point is a position on the diagram canvas.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned bounding box in absolute canvas coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Area returns the surface of the box.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Contains reports whether p lies inside the box or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Encloses reports whether other lies entirely inside r.
func (r Rect) Encloses(other Rect) bool {
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// Distance returns the Euclidean distance from p to the box.
// Points inside the box are at distance zero.
func (r Rect) Distance(p Point) float64 {
	dx := math.Max(math.Max(r.X-p.X, 0), p.X-r.Right())
	dy := math.Max(math.Max(r.Y-p.Y, 0), p.Y-r.Bottom())
	return math.Hypot(dx, dy)
}

// BoundaryDistance returns the distance from p to the nearest edge of the box,
// whether p lies inside or outside it.
func (r Rect) BoundaryDistance(p Point) float64 {
	if !r.Contains(p) {
		return r.Distance(p)
	}
	return math.Min(
		math.Min(p.X-r.X, r.Right()-p.X),
		math.Min(p.Y-r.Y, r.Bottom()-p.Y),
	)
}

// Style is a parsed draw.io style string such as
// "swimlane;fontStyle=0;html=1;".
type Style struct {
	// Base is the leading bare token, for example "text", "ellipse" or "edgeLabel".
	Base string
	// Values holds the key=value pairs.
	Values map[string]string
	raw    string
}

// ParseStyle parses a draw.io style string.
func ParseStyle(raw string) Style {
	s := Style{Values: make(map[string]string), raw: raw}
	for i, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			if i == 0 {
				s.Base = part
			} else {
				s.Values[part] = "1"
			}
			continue
		}
		s.Values[key] = value
	}
	return s
}

// Get returns the value for key, or "" when absent.
func (s Style) Get(key string) string {
	return s.Values[key]
}

// Shape returns the draw.io shape name: the explicit shape=... value when
// present, otherwise the leading bare token.
func (s Style) Shape() string {
	if shape := s.Get("shape"); shape != "" {
		return shape
	}
	return s.Base
}

// HTML reports whether the cell value is an HTML fragment.
func (s Style) HTML() bool {
	return s.Get("html") == "1"
}

// String returns the original style string.
func (s Style) String() string {
	return s.raw
}

// Shape is a vertex cell of the diagram.
type Shape struct {
	ID       string
	ParentID string
	Style    Style
	// Text is the cell value decoded to plain text. Line breaks are kept as "\n".
	Text string
	// Bounds is the absolute bounding box.
	Bounds Rect
	// Order is the position of the cell in document order.
	Order int
}

// Endpoint is one end of a connector: either locked to a shape or floating
// at a canvas position.
type Endpoint struct {
	ShapeID  string
	Point    Point
	HasPoint bool
}

// Locked reports whether the endpoint references a shape id directly.
func (e Endpoint) Locked() bool {
	return e.ShapeID != ""
}

// Connector is an edge cell of the diagram.
type Connector struct {
	ID       string
	ParentID string
	Style    Style
	// Label is the relationship text, taken from the edge value or from an
	// edge label cell attached to it.
	Label  string
	Source Endpoint
	Target Endpoint
	Order  int
}

// Graph holds the shapes and connectors of one diagram page in document order.
type Graph struct {
	Page       string
	Shapes     []*Shape
	Connectors []*Connector
}
