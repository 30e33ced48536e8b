package properties

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source is a flat key/value configuration store. Implementations must be
// safe for concurrent reads; Get must not mutate any shared state.
type Source interface {
	// Get returns the raw value for a fully qualified key and whether the
	// key is present.
	Get(key string) (string, bool)
}

// MapSource adapts a plain map to a Source.
type MapSource map[string]string

// Get implements Source
func (m MapSource) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// FromMap copies m into a Source. The copy keeps later mutations of the
// caller's map from leaking into an already distributed source.
func FromMap(m map[string]string) Source {
	cp := make(MapSource, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// FromJSON builds a Source from a JSON document. Nested objects flatten
// into dotted keys, so {"writer": {"maxItemsToReadAtOnce": 50}} yields the
// key "writer.maxItemsToReadAtOnce". Numbers keep their literal form so
// typed parsing sees exactly what the document said.
func FromJSON(data []byte) (Source, error) {
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.UseNumber() // preserve numeric literals

	var doc map[string]any
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse JSON config: %w", err)
	}

	out := MapSource{}
	if err := flatten("", doc, out); err != nil {
		return nil, err
	}
	return out, nil
}

// FromYAML builds a Source from a YAML document, flattening nested
// mappings the same way FromJSON does.
func FromYAML(data []byte) (Source, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML config: %w", err)
	}

	out := MapSource{}
	if err := flatten("", doc, out); err != nil {
		return nil, err
	}
	return out, nil
}

// flatten walks a decoded document and writes scalar leaves into out under
// dotted keys. Sequences are rejected: there is no defined mapping from a
// list to a flat property and guessing one would mask deployment mistakes.
func flatten(prefix string, value any, out MapSource) error {
	switch v := value.(type) {
	case map[string]any:
		for key, child := range v {
			childKey := key
			if prefix != "" {
				childKey = prefix + "." + key
			}
			if err := flatten(childKey, child, out); err != nil {
				return err
			}
		}
	case map[any]any:
		// yaml.v3 produces this shape for mappings with non-string keys
		for key, child := range v {
			ks, ok := key.(string)
			if !ok {
				return fmt.Errorf("config key %v under '%s' is not a string", key, prefix)
			}
			childKey := ks
			if prefix != "" {
				childKey = prefix + "." + ks
			}
			if err := flatten(childKey, child, out); err != nil {
				return err
			}
		}
	case string:
		out[prefix] = v
	case json.Number:
		out[prefix] = v.String()
	case bool:
		out[prefix] = strconv.FormatBool(v)
	case int:
		out[prefix] = strconv.Itoa(v)
	case int64:
		out[prefix] = strconv.FormatInt(v, 10)
	case uint64:
		out[prefix] = strconv.FormatUint(v, 10)
	case float64:
		out[prefix] = strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		// absent is absent; a null never shadows a lower layer
	default:
		return fmt.Errorf("config key '%s' has unsupported value type %T", prefix, value)
	}
	return nil
}

// envSource resolves keys against the process environment.
type envSource struct {
	prefix string
}

// FromEnv builds a Source over the process environment. A dotted key maps
// to PREFIX_KEY with dots replaced by underscores and the whole name upper
// cased: with prefix "SEGMENTSTORE", "writer.flushThresholdBytes" resolves
// from SEGMENTSTORE_WRITER_FLUSHTHRESHOLDBYTES.
func FromEnv(prefix string) Source {
	return &envSource{prefix: prefix}
}

// Get implements Source
func (e *envSource) Get(key string) (string, bool) {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if e.prefix != "" {
		name = e.prefix + "_" + name
	}
	return os.LookupEnv(name)
}

// layeredSource consults sources in reverse order so later layers override
// earlier ones.
type layeredSource struct {
	sources []Source
}

// Layered combines sources into one, with later sources taking precedence
// over earlier ones. Typical layering is defaults, then a deployment
// document, then environment overrides.
func Layered(sources ...Source) Source {
	combined := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			combined = append(combined, s)
		}
	}
	return &layeredSource{sources: combined}
}

// Get implements Source
func (l *layeredSource) Get(key string) (string, bool) {
	for i := len(l.sources) - 1; i >= 0; i-- {
		if v, ok := l.sources[i].Get(key); ok {
			return v, true
		}
	}
	return "", false
}
