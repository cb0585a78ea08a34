package roadmap

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	apperr "github.com/matzehuels/roadmap/pkg/errors"
)

// Load reads the roadmap file at path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func Load(path string) (*Roadmap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "roadmap file %s not found", path)
		}
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "read %s", path)
	}

	var rm *Roadmap
	if isYAML(path) {
		rm, err = DecodeYAML(bytes.NewReader(data))
	} else {
		rm, err = Decode(bytes.NewReader(data))
	}
	if err != nil {
		var e *apperr.Error
		if errors.As(err, &e) {
			e.Message = path + ": " + e.Message
			return nil, e
		}
		return nil, apperr.Wrap(apperr.ErrCodeParse, err, "parse %s", path)
	}
	return rm, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// readUTF8 reads all of r. Invalid UTF-8 is a parse error, so distinct byte
// sequences never collapse into one topic name.
func readUTF8(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "read roadmap")
	}
	if !utf8.Valid(data) {
		return nil, apperr.New(apperr.ErrCodeParse, "input is not valid UTF-8")
	}
	return data, nil
}

// Decode reads a JSON roadmap from r. The top-level value must be an object
// whose values are objects; topic order follows the source.
func Decode(r io.Reader) (*Roadmap, error) {
	data, err := readUTF8(r)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeParse, err, "decode roadmap")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, apperr.New(apperr.ErrCodeParse, "top-level value must be an object")
	}

	rm := &Roadmap{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeParse, err, "decode topic name")
		}
		name, ok := tok.(string)
		if !ok {
			return nil, apperr.New(apperr.ErrCodeParse, "unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeParse, err, "decode topic %q", name)
		}
		var attrs map[string]any
		if err := json.Unmarshal(raw, &attrs); err != nil || attrs == nil {
			return nil, apperr.New(apperr.ErrCodeParse, "topic %q: value must be an object", name)
		}
		rm.add(topicFromAttrs(name, attrs))
	}

	// Closing brace of the top-level object.
	if _, err := dec.Token(); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeParse, err, "decode roadmap")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, apperr.New(apperr.ErrCodeParse, "unexpected data after top-level object")
	}
	return rm, nil
}

// DecodeYAML reads a YAML roadmap from r using the same schema as [Decode].
func DecodeYAML(r io.Reader) (*Roadmap, error) {
	data, err := readUTF8(r)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, apperr.New(apperr.ErrCodeParse, "empty document")
		}
		return nil, apperr.Wrap(apperr.ErrCodeParse, err, "decode roadmap")
	}

	root := resolveAlias(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolveAlias(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return nil, apperr.New(apperr.ErrCodeParse, "top-level value must be a mapping")
	}

	rm := &Roadmap{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], resolveAlias(root.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return nil, apperr.New(apperr.ErrCodeParse, "line %d: topic name must be a scalar", key.Line)
		}
		if val.Kind != yaml.MappingNode {
			return nil, apperr.New(apperr.ErrCodeParse, "topic %q: value must be a mapping", key.Value)
		}
		var attrs map[string]any
		if err := val.Decode(&attrs); err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeParse, err, "decode topic %q", key.Value)
		}
		if attrs == nil {
			attrs = map[string]any{}
		}
		rm.add(topicFromAttrs(key.Value, attrs))
	}
	return rm, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// topicFromAttrs applies the tolerant field rules: a missing level means
// beginner, a non-string level is unrecognized, and only a non-empty string
// prerequisite counts.
func topicFromAttrs(name string, attrs map[string]any) Topic {
	t := Topic{Name: name, Level: Beginner}
	if v, ok := attrs["level"]; ok {
		s, _ := v.(string)
		t.Level = Level(s)
	}
	t.Prerequisite, _ = attrs["prerequisite"].(string)
	t.EstTime, _ = attrs["est_time"].(string)
	return t
}
