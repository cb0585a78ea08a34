package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	apperr "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/render"
)

// ToDOT converts a topic graph to Graphviz DOT format.
// Nodes and edges are emitted in graph order. Each node gets a positional
// ID (n0, n1, ...) and carries the topic name only in its label, so names
// that print alike still stay distinct nodes. Edges whose endpoints are
// not nodes of g are skipped.
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if g.Layout.RankDir != "" {
		fmt.Fprintf(&buf, "  rankdir=%s;\n", quote(g.Layout.RankDir))
	}
	if g.Layout.Splines != "" {
		fmt.Fprintf(&buf, "  splines=%s;\n", quote(g.Layout.Splines))
	}

	if len(g.Nodes) > 0 {
		buf.WriteString("\n")
	}
	ids := make(map[string]string, len(g.Nodes))
	for i, n := range g.Nodes {
		id := nodeID(i)
		ids[n.Name] = id
		fmt.Fprintf(&buf, "  %s [%s];\n", id, strings.Join(nodeAttrs(n), ", "))
	}

	if len(g.Edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range g.Edges {
		from, ok := ids[e.From]
		if !ok {
			continue
		}
		to, ok := ids[e.To]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "  %s -> %s", from, to)
		if e.ArrowSize > 0 {
			fmt.Fprintf(&buf, " [arrowsize=%s]", num(e.ArrowSize))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string {
	return "n" + strconv.Itoa(i)
}

func nodeAttrs(n graph.Node) []string {
	attrs := []string{"label=" + quote(n.DisplayLabel())}
	if n.Shape != "" {
		attrs = append(attrs, "shape="+quote(n.Shape))
	}
	if n.Style != "" {
		attrs = append(attrs, "style="+quote(n.Style))
	}
	if n.FillColor != "" {
		attrs = append(attrs, "fillcolor="+quote(n.FillColor))
	}
	if n.FontSize > 0 {
		attrs = append(attrs, "fontsize="+num(n.FontSize))
	}
	if n.Width > 0 {
		attrs = append(attrs, "width="+num(n.Width))
	}
	if n.Height > 0 {
		attrs = append(attrs, "height="+num(n.Height))
	}
	return attrs
}

// quote renders s as a DOT double-quoted string. Newlines become \n line
// breaks and other control characters print as spaces.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r < 0x20 || r == 0x7f:
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Renderer draws topic graphs with the in-process Graphviz engine.
type Renderer struct{}

// NewRenderer returns a Graphviz-backed renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

var _ render.Renderer = (*Renderer)(nil)

// Render writes g to w. FormatDOT emits the DOT source without running the
// layout engine.
func (r *Renderer) Render(ctx context.Context, g *graph.Graph, format render.Format, w io.Writer) error {
	dot := ToDOT(g)

	var (
		out []byte
		err error
	)
	switch format {
	case render.FormatDOT:
		out = []byte(dot)
	case render.FormatSVG:
		out, err = RenderSVG(ctx, dot)
	case render.FormatPNG:
		out, err = RenderPNG(ctx, dot)
	default:
		return apperr.New(apperr.ErrCodeInvalidFormat, "nodelink cannot render %s", format)
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return apperr.Wrap(apperr.ErrCodeRender, err, "write %s", format)
	}
	return nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := renderDOT(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeRender, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeRender, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeRender, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the image scales from a
// zero origin with explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
