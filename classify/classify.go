// Package classify decides the semantic role of every diagram shape.
//
// The shape library draws an individual as a labelled shape with one or more
// type tags: child cells reading "rico:<Class>", or trailing "rico:<Class>"
// lines in the shape's own text. Other labelled shapes hold literal values.
// Everything else is decorative and never reaches the output.
package classify

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/c360studio/ricdraw/diagram"
	"github.com/c360studio/ricdraw/vocabulary/rico"
)

// Kind is the closed set of shape roles.
type Kind int

const (
	Decorative Kind = iota
	Individual
	Literal
	TypeTag
)

func (k Kind) String() string {
	switch k {
	case Individual:
		return "individual"
	case Literal:
		return "literal"
	case TypeTag:
		return "type-tag"
	default:
		return "decorative"
	}
}

// recognizedStyles are the draw.io shape names used by the shape library.
// The empty name is the default rectangle.
var recognizedStyles = []string{
	"", "rectangle", "rect", "rounded", "text", "label", "swimlane",
	"ellipse", "doubleEllipse", "rhombus", "hexagon", "process", "document",
	"note", "card", "cylinder", "cylinder3", "parallelogram", "trapezoid",
	"step", "cloud", "callout", "table", "tableRow",
}

// Role is the classification of one shape.
type Role struct {
	Shape *diagram.Shape
	Kind  Kind
	// Label is the raw text without inline type tags.
	Label string
	// Classes lists RiC-O class local names for individuals and tags.
	Classes []string
	// Owner is the id of the individual shape a type tag belongs to.
	Owner string
}

// Options configures classification.
type Options struct {
	Strict bool
	// ExtraStyles are shape names recognized in addition to the built-in set.
	ExtraStyles []string
	Logger      *slog.Logger
}

// Result holds the role of every shape in document order.
type Result struct {
	roles []*Role
	byID  map[string]*Role
}

// Role returns the role of a shape.
func (r *Result) Role(id string) (*Role, bool) {
	role, ok := r.byID[id]
	return role, ok
}

// Roles returns every role in document order.
func (r *Result) Roles() []*Role {
	return r.roles
}

// Entity returns the individual or literal a connector endpoint on shape id
// denotes. Endpoints on a type tag denote the tag's owner.
func (r *Result) Entity(id string) (*Role, bool) {
	role, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	if role.Kind == TypeTag {
		role, ok = r.byID[role.Owner]
		if !ok {
			return nil, false
		}
	}
	if role.Kind != Individual && role.Kind != Literal {
		return nil, false
	}
	return role, true
}

// Candidates returns the shapes a floating connector end may attach to.
func (r *Result) Candidates() []*diagram.Shape {
	var shapes []*diagram.Shape
	for _, role := range r.roles {
		if role.Kind == Individual || role.Kind == Literal {
			shapes = append(shapes, role.Shape)
		}
	}
	return shapes
}

// Count returns the number of shapes classified as k.
func (r *Result) Count(k Kind) int {
	n := 0
	for _, role := range r.roles {
		if role.Kind == k {
			n++
		}
	}
	return n
}

// Classify assigns a role to every shape of g.
func Classify(g *diagram.Graph, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	styles := make(map[string]bool, len(recognizedStyles)+len(opts.ExtraStyles))
	for _, s := range recognizedStyles {
		styles[s] = true
	}
	for _, s := range opts.ExtraStyles {
		styles[s] = true
	}

	res := &Result{byID: make(map[string]*Role, len(g.Shapes))}
	for _, s := range g.Shapes {
		role := parseText(s)
		res.roles = append(res.roles, role)
		res.byID[s.ID] = role
	}

	for _, role := range res.roles {
		for _, class := range role.Classes {
			if !rico.IsClass(class) {
				return nil, &UnknownClassError{ShapeID: role.Shape.ID, Class: class}
			}
		}
	}

	if err := res.attachTags(opts.Strict, logger); err != nil {
		return nil, err
	}

	for _, role := range res.roles {
		if role.Kind != Individual && role.Kind != Literal {
			continue
		}
		if styles[role.Shape.Style.Shape()] {
			continue
		}
		if role.Kind == Individual {
			if opts.Strict {
				return nil, &UnrecognizedShapeError{
					ShapeID: role.Shape.ID,
					Style:   role.Shape.Style.String(),
					Reason:  "shape carries type tags but its style is not part of the shape library",
				}
			}
			logger.Warn("Dropping typed shape with unrecognized style",
				"shape", role.Shape.ID, "label", role.Label, "style", role.Shape.Style.Shape())
		} else {
			logger.Debug("Ignoring shape with unrecognized style",
				"shape", role.Shape.ID, "style", role.Shape.Style.Shape())
		}
		role.Kind = Decorative
	}

	// Tags follow their owner out of the output.
	for _, role := range res.roles {
		if role.Kind == TypeTag && res.byID[role.Owner].Kind == Decorative {
			role.Kind = Decorative
		}
	}
	return res, nil
}

// parseText gives a first role from the shape text alone: blank shapes are
// decorative, shapes holding only tags are tags, and labelled shapes are
// individuals when they carry inline tags and literals otherwise.
func parseText(s *diagram.Shape) *Role {
	role := &Role{Shape: s}
	lines := strings.Split(s.Text, "\n")

	cut := len(lines)
	var inline []string
	for cut > 0 {
		line := strings.TrimSpace(lines[cut-1])
		if line == "" {
			cut--
			continue
		}
		class, ok := rico.ParseClass(line)
		if !ok {
			break
		}
		inline = append([]string{class}, inline...)
		cut--
	}

	role.Label = strings.Join(lines[:cut], "\n")
	switch {
	case strings.TrimSpace(role.Label) != "":
		role.Classes = inline
		if len(inline) > 0 {
			role.Kind = Individual
		} else {
			role.Kind = Literal
		}
	case len(inline) > 0:
		role.Kind = TypeTag
		role.Classes = inline
	default:
		role.Kind = Decorative
	}
	return role
}

// attachTags gives every type tag an owner and merges its classes into the
// owner, turning literals into individuals. A tag belongs to its XML parent
// when that is a labelled shape; otherwise, unless strict, to the smallest
// labelled shape enclosing it.
func (r *Result) attachTags(strict bool, logger *slog.Logger) error {
	for _, tag := range r.roles {
		if tag.Kind != TypeTag {
			continue
		}
		owner := r.labelled(tag.Shape.ParentID)
		if owner == nil {
			if strict {
				return &UnrecognizedShapeError{
					ShapeID: tag.Shape.ID,
					Style:   tag.Shape.Style.String(),
					Reason:  "type tag is not a child of a labelled shape",
				}
			}
			owner = r.enclosing(tag.Shape)
			if owner == nil {
				logger.Warn("Dropping type tag outside any labelled shape",
					"shape", tag.Shape.ID, "classes", tag.Classes)
				tag.Kind = Decorative
				continue
			}
			logger.Debug("Attached type tag to enclosing shape",
				"shape", tag.Shape.ID, "owner", owner.Shape.ID)
		}
		tag.Owner = owner.Shape.ID
		for _, class := range tag.Classes {
			if !contains(owner.Classes, class) {
				owner.Classes = append(owner.Classes, class)
			}
		}
		owner.Kind = Individual
	}
	return nil
}

func (r *Result) labelled(id string) *Role {
	role, ok := r.byID[id]
	if !ok || (role.Kind != Individual && role.Kind != Literal) {
		return nil
	}
	return role
}

// enclosing returns the smallest labelled shape whose bounds contain s,
// preferring the earliest in document order on equal area.
func (r *Result) enclosing(s *diagram.Shape) *Role {
	var found []*Role
	for _, role := range r.roles {
		if role.Shape == s || (role.Kind != Individual && role.Kind != Literal) {
			continue
		}
		if role.Shape.Bounds.Encloses(s.Bounds) {
			found = append(found, role)
		}
	}
	if len(found) == 0 {
		return nil
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Shape.Bounds.Area() < found[j].Shape.Bounds.Area()
	})
	return found[0]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
