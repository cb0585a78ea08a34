package render

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperr "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/graph"
)

// Format is an output encoding.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
)

// DefaultFormat is used when neither a flag nor the output path decides.
const DefaultFormat = FormatPNG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[Format]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !ValidFormats[f] {
		return "", apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %s (must be png, svg, dot, or json)", s)
	}
	return f, nil
}

// FormatFromPath infers the format from a file extension. The boolean is
// false when the extension is missing or unknown.
func FormatFromPath(path string) (Format, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "gv":
		return FormatDOT, true
	default:
		f := Format(ext)
		return f, ValidFormats[f]
	}
}

// Renderer draws a topic graph. Implementations own layout and encoding.
type Renderer interface {
	Render(ctx context.Context, g *graph.Graph, format Format, w io.Writer) error
}

// Export renders g in the given format and returns the encoded bytes.
// The json format is served directly from the graph descriptors.
func Export(ctx context.Context, r Renderer, g *graph.Graph, format Format) ([]byte, error) {
	if !ValidFormats[format] {
		return nil, apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %s", format)
	}

	var buf bytes.Buffer
	if format == FormatJSON {
		if err := graph.WriteJSON(g, &buf); err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeRender, err, "encode json")
		}
		return buf.Bytes(), nil
	}

	if err := r.Render(ctx, g, format, &buf); err != nil {
		if apperr.GetCode(err) != "" {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.ErrCodeRender, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

// WriteFile renders g and writes the result to path. Nothing is written
// unless rendering succeeds.
func WriteFile(ctx context.Context, r Renderer, g *graph.Graph, format Format, path string) error {
	if err := apperr.ValidateOutputPath(path); err != nil {
		return err
	}

	data, err := Export(ctx, r, g, format)
	if err != nil {
		return err
	}
	return WriteOutput(path, data)
}

// WriteOutput writes already-encoded bytes to path.
func WriteOutput(path string, data []byte) error {
	if err := apperr.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperr.Wrap(apperr.ErrCodeRender, err, "write %s", path)
	}
	return nil
}
