package diagram

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
)

// element is a generic XML element. draw.io documents mix mxCell, UserObject
// and object elements at the same level, so cells are decoded generically.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []element  `xml:",any"`
	Text     string     `xml:",chardata"`
}

func (e *element) attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *element) get(name string) string {
	v, _ := e.attr(name)
	return v
}

func (e *element) child(name string) *element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return &e.Children[i]
		}
	}
	return nil
}

// cell is the flattened view of one mxCell, with any UserObject wrapper
// folded in.
type cell struct {
	id       string
	parent   string
	value    string
	style    Style
	vertex   bool
	edge     bool
	source   string
	target   string
	geometry *element
	order    int
}

// Load parses a draw.io document and returns the graph of its first page.
// It accepts a full mxfile document (plain or compressed pages) and a bare
// mxGraphModel.
func Load(data []byte) (*Graph, error) {
	root, err := decode(data)
	if err != nil {
		return nil, err
	}

	page := ""
	model := root
	switch root.XMLName.Local {
	case "mxGraphModel":
	case "mxfile":
		d := root.child("diagram")
		if d == nil {
			return nil, formatErrorf("", "mxfile has no diagram page")
		}
		page = d.get("name")
		if model = d.child("mxGraphModel"); model == nil {
			model, err = inflatePage(d.Text)
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, formatErrorf("", "unexpected root element <%s>, want <mxfile> or <mxGraphModel>", root.XMLName.Local)
	}

	rootElem := model.child("root")
	if rootElem == nil {
		return nil, formatErrorf("", "mxGraphModel has no root element")
	}

	cells, err := flattenCells(rootElem.Children)
	if err != nil {
		return nil, err
	}

	g, err := build(cells)
	if err != nil {
		return nil, err
	}
	g.Page = page
	return g, nil
}

func decode(data []byte) (*element, error) {
	var root element
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, &FormatError{Reason: "invalid XML", Err: err}
	}
	return &root, nil
}

// inflatePage decodes a compressed diagram page: base64 of raw deflate of
// the URL-encoded mxGraphModel XML.
func inflatePage(text string) (*element, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &FormatError{Reason: "diagram page is empty", Err: ErrEmptyDiagram}
	}
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, &FormatError{Reason: "decode compressed page", Err: err}
	}
	inflated, err := io.ReadAll(flate.NewReader(bytes.NewReader(raw)))
	if err != nil {
		return nil, &FormatError{Reason: "inflate compressed page", Err: err}
	}
	unescaped, err := url.QueryUnescape(string(inflated))
	if err != nil {
		return nil, &FormatError{Reason: "unescape compressed page", Err: err}
	}
	model, err := decode([]byte(unescaped))
	if err != nil {
		return nil, err
	}
	if model.XMLName.Local != "mxGraphModel" {
		return nil, formatErrorf("", "compressed page holds <%s>, want <mxGraphModel>", model.XMLName.Local)
	}
	return model, nil
}

func flattenCells(elems []element) ([]*cell, error) {
	cells := make([]*cell, 0, len(elems))
	for i := range elems {
		e := &elems[i]
		var c *cell
		switch e.XMLName.Local {
		case "mxCell":
			c = newCell(e, e)
		case "UserObject", "object":
			inner := e.child("mxCell")
			if inner == nil {
				return nil, formatErrorf(e.get("id"), "<%s> without an mxCell", e.XMLName.Local)
			}
			c = newCell(e, inner)
			c.value = e.get("label")
		default:
			return nil, formatErrorf(e.get("id"), "expecting <mxCell>, found <%s>", e.XMLName.Local)
		}
		if c.id == "" {
			return nil, formatErrorf("", "cell %d has no id", i)
		}
		c.order = i
		cells = append(cells, c)
	}
	if len(cells) == 0 {
		return nil, &FormatError{Reason: "graph has no cells", Err: ErrEmptyDiagram}
	}
	return cells, nil
}

func newCell(outer, inner *element) *cell {
	return &cell{
		id:       outer.get("id"),
		parent:   inner.get("parent"),
		value:    inner.get("value"),
		style:    ParseStyle(inner.get("style")),
		vertex:   inner.get("vertex") == "1",
		edge:     inner.get("edge") == "1",
		source:   inner.get("source"),
		target:   inner.get("target"),
		geometry: inner.child("mxGeometry"),
	}
}

func build(cells []*cell) (*Graph, error) {
	byID := make(map[string]*cell, len(cells))
	for _, c := range cells {
		if _, dup := byID[c.id]; dup {
			return nil, formatErrorf(c.id, "duplicate cell id")
		}
		byID[c.id] = c
	}
	for _, c := range cells {
		if c.parent != "" {
			if _, ok := byID[c.parent]; !ok {
				return nil, formatErrorf(c.id, "parent %q does not exist", c.parent)
			}
		}
	}

	g := &Graph{}
	offsets := &offsetResolver{cells: byID, done: make(map[string]Point), visiting: make(map[string]bool)}
	edges := make(map[string]*Connector)
	var labels []*cell

	for _, c := range cells {
		switch {
		case c.edge:
			conn, err := newConnector(c, byID, offsets)
			if err != nil {
				return nil, err
			}
			edges[c.id] = conn
			g.Connectors = append(g.Connectors, conn)
		case c.vertex && c.parent != "" && byID[c.parent].edge:
			labels = append(labels, c)
		case c.vertex:
			origin, err := offsets.origin(c.id)
			if err != nil {
				return nil, err
			}
			rel, err := parseBox(c)
			if err != nil {
				return nil, err
			}
			s := &Shape{
				ID:       c.id,
				ParentID: c.parent,
				Style:    c.style,
				Text:     cellText(c),
				Bounds:   Rect{X: origin.X + rel.X, Y: origin.Y + rel.Y, Width: rel.Width, Height: rel.Height},
				Order:    c.order,
			}
			g.Shapes = append(g.Shapes, s)
		}
	}

	// Edge label cells carry the connector text when the edge value is empty.
	for _, l := range labels {
		conn := edges[l.parent]
		if conn.Label == "" {
			conn.Label = cellText(l)
		}
	}

	for _, conn := range g.Connectors {
		for _, ref := range []string{conn.Source.ShapeID, conn.Target.ShapeID} {
			if ref == "" {
				continue
			}
			if c, ok := byID[ref]; !ok || !c.vertex {
				return nil, formatErrorf(conn.ID, "endpoint references %q, which is not a shape", ref)
			}
		}
	}

	if len(g.Shapes) == 0 && len(g.Connectors) == 0 {
		return nil, &FormatError{Reason: "graph has no shapes or connectors", Err: ErrEmptyDiagram}
	}
	return g, nil
}

func newConnector(c *cell, byID map[string]*cell, offsets *offsetResolver) (*Connector, error) {
	origin, err := offsets.origin(c.id)
	if err != nil {
		return nil, err
	}
	conn := &Connector{
		ID:       c.id,
		ParentID: c.parent,
		Style:    c.style,
		Label:    cellText(c),
		Source:   Endpoint{ShapeID: c.source},
		Target:   Endpoint{ShapeID: c.target},
		Order:    c.order,
	}
	if c.geometry != nil {
		for i := range c.geometry.Children {
			p := &c.geometry.Children[i]
			if p.XMLName.Local != "mxPoint" {
				continue
			}
			x, err := parseNumber(c.id, p, "x")
			if err != nil {
				return nil, err
			}
			y, err := parseNumber(c.id, p, "y")
			if err != nil {
				return nil, err
			}
			pt := Point{X: origin.X + x, Y: origin.Y + y}
			switch p.get("as") {
			case "sourcePoint":
				conn.Source.Point, conn.Source.HasPoint = pt, true
			case "targetPoint":
				conn.Target.Point, conn.Target.HasPoint = pt, true
			}
		}
	}
	for _, end := range []struct {
		name string
		ep   Endpoint
	}{{"source", conn.Source}, {"target", conn.Target}} {
		if !end.ep.Locked() && !end.ep.HasPoint {
			return nil, formatErrorf(c.id, "edge has neither a %s cell nor a %sPoint", end.name, end.name)
		}
	}
	return conn, nil
}

func cellText(c *cell) string {
	if c.style.HTML() {
		return htmlText(c.value)
	}
	return c.value
}

func parseBox(c *cell) (Rect, error) {
	if c.geometry == nil {
		return Rect{}, formatErrorf(c.id, "vertex has no mxGeometry")
	}
	var r Rect
	var err error
	if r.X, err = parseNumber(c.id, c.geometry, "x"); err != nil {
		return Rect{}, err
	}
	if r.Y, err = parseNumber(c.id, c.geometry, "y"); err != nil {
		return Rect{}, err
	}
	if r.Width, err = parseNumber(c.id, c.geometry, "width"); err != nil {
		return Rect{}, err
	}
	if r.Height, err = parseNumber(c.id, c.geometry, "height"); err != nil {
		return Rect{}, err
	}
	if r.Width < 0 || r.Height < 0 {
		return Rect{}, formatErrorf(c.id, "negative geometry %gx%g", r.Width, r.Height)
	}
	return r, nil
}

// parseNumber reads a numeric attribute. draw.io omits coordinates equal to
// zero, so a missing attribute reads as 0.
func parseNumber(cellID string, e *element, name string) (float64, error) {
	v, ok := e.attr(name)
	if !ok || v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &FormatError{CellID: cellID, Reason: fmt.Sprintf("attribute %s=%q is not a number", name, v), Err: err}
	}
	return f, nil
}

// offsetResolver computes the absolute origin of a cell's coordinate system.
// Children of a vertex are positioned relative to that vertex; children of a
// layer are absolute.
type offsetResolver struct {
	cells    map[string]*cell
	done     map[string]Point
	visiting map[string]bool
}

func (o *offsetResolver) origin(id string) (Point, error) {
	c := o.cells[id]
	parent, ok := o.cells[c.parent]
	if !ok || !parent.vertex {
		return Point{}, nil
	}
	if p, ok := o.done[parent.id]; ok {
		return p, nil
	}
	if o.visiting[parent.id] {
		return Point{}, formatErrorf(id, "cyclic parent chain")
	}
	o.visiting[parent.id] = true
	base, err := o.origin(parent.id)
	if err != nil {
		return Point{}, err
	}
	rel, err := parseBox(parent)
	if err != nil {
		return Point{}, err
	}
	p := Point{X: base.X + rel.X, Y: base.Y + rel.Y}
	o.done[parent.id] = p
	return p, nil
}
