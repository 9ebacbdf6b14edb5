package paramfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/jsonfetch/jsonvalue"
	"github.com/GriffinCanCode/jsonfetch/params"
)

// Format identifies a params file syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for file extensions no loader handles.
var ErrUnknownFormat = errors.New("unknown params file format")

// FormatOf maps a file path to its format by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads path and decodes it according to its extension.
func Load(path string) (params.Value, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file: %w", err)
	}
	v, err := Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to load params from %s: %w", path, err)
	}
	return v, nil
}

// Decode parses data in the given format. Blank input yields Absent.
func Decode(format Format, data []byte) (params.Value, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return params.Absent{}, nil
	}
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func decodeJSON(data []byte) (params.Value, error) {
	doc, err := jsonvalue.Parse(data)
	if err != nil {
		return nil, err
	}
	return FromJSON(doc)
}

// FromJSON converts a parsed JSON document into a parameter tree, keeping
// object member order. A repeated member name keeps its first position and
// its last value.
func FromJSON(v jsonvalue.Value) (params.Value, error) {
	switch v.Kind() {
	case jsonvalue.Null:
		return params.Null{}, nil
	case jsonvalue.Bool:
		b, _ := v.Bool()
		return params.Bool(b), nil
	case jsonvalue.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return params.Number(f), nil
	case jsonvalue.String:
		s, _ := v.Str()
		return params.Text(s), nil
	case jsonvalue.Array:
		seq := make(params.Sequence, 0, v.Len())
		for _, item := range v.Items() {
			pv, err := FromJSON(item)
			if err != nil {
				return nil, err
			}
			seq = append(seq, pv)
		}
		return seq, nil
	case jsonvalue.Object:
		m := params.Obj()
		for _, member := range v.Members() {
			pv, err := FromJSON(member.Value)
			if err != nil {
				return nil, err
			}
			m = m.Set(member.Name, pv)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: json %s", params.ErrUnsupportedType, v.Kind())
	}
}

func decodeYAML(data []byte) (params.Value, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAML(doc)
}

func fromYAML(node any) (params.Value, error) {
	switch n := node.(type) {
	case yaml.MapSlice:
		m := params.Obj()
		for _, item := range n {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			v, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			m = m.Set(key, v)
		}
		return m, nil
	case []any:
		seq := make(params.Sequence, 0, len(n))
		for _, item := range n {
			v, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	default:
		return params.From(n)
	}
}

func decodeTOML(data []byte) (params.Value, error) {
	doc := make(map[string]any)
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return params.From(doc)
}
