// Package resolve attaches both ends of every labelled connector to a
// classified shape.
//
// An end locked to a shape uses that shape; an end on a type tag is
// redirected to the tag's owner. A floating end is repaired from geometry
// unless strict mode is set: the enclosing or nearest individual or literal
// shape within the gap tolerance is chosen.
package resolve

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/ricdraw/classify"
	"github.com/c360studio/ricdraw/diagram"
)

// DefaultMaxGap is the default tolerance, in canvas units, between a
// floating connector end and the shape it is attached to.
const DefaultMaxGap = 10

// End names one end of a connector.
type End int

const (
	Source End = iota
	Target
)

func (e End) String() string {
	if e == Source {
		return "source"
	}
	return "target"
}

// Options configures resolution.
type Options struct {
	Strict bool
	MaxGap float64
	Logger *slog.Logger
}

// Link is a connector whose ends are both attached to classified shapes.
type Link struct {
	Connector *diagram.Connector
	Source    *classify.Role
	Target    *classify.Role
}

// Result holds the links in connector document order.
type Result struct {
	Links []Link
	// Repaired counts floating ends attached from geometry.
	Repaired int
	// Skipped counts connectors without a label.
	Skipped int
}

// Resolve attaches the ends of every labelled connector of g.
func Resolve(g *diagram.Graph, roles *classify.Result, opts Options) (*Result, error) {
	r := &resolver{
		roles: roles,
		index: NewIndex(roles.Candidates()),
		opts:  opts,
	}
	if r.opts.Logger == nil {
		r.opts.Logger = slog.Default()
	}

	res := &Result{}
	for _, c := range g.Connectors {
		if strings.TrimSpace(c.Label) == "" {
			r.opts.Logger.Debug("Skipping unlabelled connector", "connector", c.ID)
			res.Skipped++
			continue
		}
		src, repairedSrc, err := r.end(c, Source, c.Source)
		if err != nil {
			return nil, err
		}
		dst, repairedDst, err := r.end(c, Target, c.Target)
		if err != nil {
			return nil, err
		}
		if repairedSrc {
			res.Repaired++
		}
		if repairedDst {
			res.Repaired++
		}
		res.Links = append(res.Links, Link{Connector: c, Source: src, Target: dst})
	}
	return res, nil
}

type resolver struct {
	roles *classify.Result
	index *Index
	opts  Options
}

func (r *resolver) end(c *diagram.Connector, which End, ep diagram.Endpoint) (*classify.Role, bool, error) {
	dangling := func(reason string) error {
		return &DanglingConnectionError{ConnectorID: c.ID, Label: c.Label, End: which, Reason: reason}
	}

	if ep.Locked() {
		role, ok := r.roles.Entity(ep.ShapeID)
		if !ok {
			return nil, false, dangling(fmt.Sprintf("attached shape %q is not an individual or a literal", ep.ShapeID))
		}
		return role, false, nil
	}

	if r.opts.Strict {
		return nil, false, dangling("end is not attached to a shape")
	}
	shape, dist, ok := r.index.Nearest(ep.Point, r.opts.MaxGap)
	if !ok {
		return nil, false, dangling(fmt.Sprintf("no shape within %g of (%g, %g)", r.opts.MaxGap, ep.Point.X, ep.Point.Y))
	}
	role, _ := r.roles.Role(shape.ID)
	r.opts.Logger.Debug("Attached floating connector end",
		"connector", c.ID, "end", which.String(), "shape", shape.ID, "distance", dist)
	return role, true, nil
}
