package properties

import (
	"strconv"
	"strings"
	"time"

	"github.com/ajesh05js/pravega/errors"
)

// Properties binds a Source to a component namespace and provides typed
// extraction with per-property defaults. It replaces an inheritance-style
// shared config base: components hold a Properties value instead of
// extending one.
type Properties struct {
	source    Source
	namespace string
}

// New binds source to a component namespace. An empty namespace reads keys
// unqualified.
func New(source Source, namespace string) *Properties {
	return &Properties{source: source, namespace: namespace}
}

// Qualify returns the fully qualified key for a property name under a
// namespace.
func Qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// Namespace returns the bound namespace
func (p *Properties) Namespace() string {
	return p.namespace
}

// Key returns the fully qualified key for a property name
func (p *Properties) Key(name string) string {
	return Qualify(p.namespace, name)
}

// Has reports whether the property is present in the source
func (p *Properties) Has(name string) bool {
	_, ok := p.source.Get(p.Key(name))
	return ok
}

// String returns the raw value of a required property. Absence is a
// missing-property error.
func (p *Properties) String(name string) (string, error) {
	v, ok := p.source.Get(p.Key(name))
	if !ok {
		return "", errors.NewMissingProperty(p.Key(name))
	}
	return v, nil
}

// StringDefault returns the raw value of a property, or def when absent.
func (p *Properties) StringDefault(name, def string) string {
	if v, ok := p.source.Get(p.Key(name)); ok {
		return v
	}
	return def
}

// Int32 returns a required property parsed as a 32-bit integer.
func (p *Properties) Int32(name string) (int32, error) {
	raw, err := p.String(name)
	if err != nil {
		return 0, err
	}
	return p.parseInt32(name, raw)
}

// Int32Default returns a property parsed as a 32-bit integer, or def when
// the property is absent. A present but unparseable value is always an
// error, never the default.
func (p *Properties) Int32Default(name string, def int32) (int32, error) {
	raw, ok := p.source.Get(p.Key(name))
	if !ok {
		return def, nil
	}
	return p.parseInt32(name, raw)
}

// Int64 returns a required property parsed as a 64-bit integer.
func (p *Properties) Int64(name string) (int64, error) {
	raw, err := p.String(name)
	if err != nil {
		return 0, err
	}
	return p.parseInt64(name, raw)
}

// Int64Default returns a property parsed as a 64-bit integer, or def when
// the property is absent.
func (p *Properties) Int64Default(name string, def int64) (int64, error) {
	raw, ok := p.source.Get(p.Key(name))
	if !ok {
		return def, nil
	}
	return p.parseInt64(name, raw)
}

// BoolDefault returns a property parsed as a boolean ("true"/"false", as
// accepted by strconv.ParseBool), or def when absent.
func (p *Properties) BoolDefault(name string, def bool) (bool, error) {
	raw, ok := p.source.Get(p.Key(name))
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, errors.NewInvalidPropertyFormat(p.Key(name), raw, err)
	}
	return v, nil
}

// DurationMillisDefault returns a property holding a millisecond count as
// a time.Duration, or def when absent.
func (p *Properties) DurationMillisDefault(name string, def time.Duration) (time.Duration, error) {
	millis, err := p.Int64Default(name, def.Milliseconds())
	if err != nil {
		return 0, err
	}
	return time.Duration(millis) * time.Millisecond, nil
}

func (p *Properties) parseInt32(name, raw string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, errors.NewInvalidPropertyFormat(p.Key(name), raw, err)
	}
	return int32(v), nil
}

func (p *Properties) parseInt64(name, raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, errors.NewInvalidPropertyFormat(p.Key(name), raw, err)
	}
	return v, nil
}
