package writer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ajesh05js/pravega/errors"
	"github.com/ajesh05js/pravega/properties"
)

// ComponentCode is the default namespace under which writer properties are
// looked up.
const ComponentCode = "writer"

// Recognized property names, relative to the namespace
const (
	PropertyFlushThresholdBytes  = "flushThresholdBytes"
	PropertyFlushThresholdMillis = "flushThresholdMillis"
	PropertyMaxFlushSizeBytes    = "maxFlushSizeBytes"
	PropertyMaxItemsToReadAtOnce = "maxItemsToReadAtOnce"
	PropertyMinReadTimeoutMillis = "minReadTimeoutMillis"
	PropertyMaxReadTimeoutMillis = "maxReadTimeoutMillis"
)

// Defaults applied when a property is absent from the source
const (
	DefaultFlushThresholdBytes  = 4 * 1024 * 1024
	DefaultFlushThresholdTime   = 30 * time.Second
	DefaultMaxFlushSizeBytes    = DefaultFlushThresholdBytes
	DefaultMaxItemsToReadAtOnce = 100
	DefaultMinReadTimeout       = 2 * time.Second
	DefaultMaxReadTimeout       = 30 * time.Minute
)

// Config holds the validated writer parameters. All fields are fixed at
// construction; a Config is safe for unsynchronized concurrent reads.
type Config struct {
	namespace            string
	flushThresholdBytes  int
	flushThresholdTime   time.Duration
	maxFlushSizeBytes    int
	maxItemsToReadAtOnce int
	minReadTimeout       time.Duration
	maxReadTimeout       time.Duration
}

// New loads writer configuration from source under the default
// ComponentCode namespace.
func New(source properties.Source) (*Config, error) {
	return Load(source, ComponentCode)
}

// Load resolves, defaults, and validates writer configuration from source
// under the given namespace. The first property that is present but not
// parseable as its numeric type aborts the load; once all six values are
// resolved the invariants are checked in a fixed order and the first
// violation wins. On any failure no Config is produced.
func Load(source properties.Source, namespace string) (*Config, error) {
	props := properties.New(source, namespace)

	flushBytes, err := props.Int32Default(PropertyFlushThresholdBytes, DefaultFlushThresholdBytes)
	if err != nil {
		return nil, err
	}

	flushTime, err := props.DurationMillisDefault(PropertyFlushThresholdMillis, DefaultFlushThresholdTime)
	if err != nil {
		return nil, err
	}

	maxFlushSize, err := props.Int32Default(PropertyMaxFlushSizeBytes, DefaultMaxFlushSizeBytes)
	if err != nil {
		return nil, err
	}

	maxItems, err := props.Int32Default(PropertyMaxItemsToReadAtOnce, DefaultMaxItemsToReadAtOnce)
	if err != nil {
		return nil, err
	}

	minRead, err := props.DurationMillisDefault(PropertyMinReadTimeoutMillis, DefaultMinReadTimeout)
	if err != nil {
		return nil, err
	}

	maxRead, err := props.DurationMillisDefault(PropertyMaxReadTimeoutMillis, DefaultMaxReadTimeout)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		namespace:            namespace,
		flushThresholdBytes:  int(flushBytes),
		flushThresholdTime:   flushTime,
		maxFlushSizeBytes:    int(maxFlushSize),
		maxItemsToReadAtOnce: int(maxItems),
		minReadTimeout:       minRead,
		maxReadTimeout:       maxRead,
	}

	if err := cfg.validate(props); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies the cross-field invariants in their fixed order,
// stopping at the first violation. maxFlushSizeBytes carries no constraint.
func (c *Config) validate(props *properties.Properties) error {
	if c.flushThresholdBytes < 0 {
		return errors.NewConstraintViolation(
			fmt.Sprintf("property '%s' must be a non-negative integer", props.Key(PropertyFlushThresholdBytes)),
			props.Key(PropertyFlushThresholdBytes))
	}

	if c.maxItemsToReadAtOnce <= 0 {
		return errors.NewConstraintViolation(
			fmt.Sprintf("property '%s' must be a positive integer", props.Key(PropertyMaxItemsToReadAtOnce)),
			props.Key(PropertyMaxItemsToReadAtOnce))
	}

	if c.minReadTimeout < 0 {
		return errors.NewConstraintViolation(
			fmt.Sprintf("property '%s' must be a non-negative integer", props.Key(PropertyMinReadTimeoutMillis)),
			props.Key(PropertyMinReadTimeoutMillis))
	}

	if c.minReadTimeout > c.maxReadTimeout {
		return errors.NewConstraintViolation(
			fmt.Sprintf("property '%s' must be smaller than or equal to '%s'",
				props.Key(PropertyMinReadTimeoutMillis), props.Key(PropertyMaxReadTimeoutMillis)),
			props.Key(PropertyMinReadTimeoutMillis),
			props.Key(PropertyMaxReadTimeoutMillis))
	}

	return nil
}

// Namespace returns the namespace this configuration was loaded under
func (c *Config) Namespace() string {
	return c.namespace
}

// FlushThresholdBytes returns the minimum number of bytes to accumulate
// for a segment before a flush to storage is triggered.
func (c *Config) FlushThresholdBytes() int {
	return c.flushThresholdBytes
}

// FlushThresholdTime returns the minimum elapsed time before a flush to
// storage is triggered.
func (c *Config) FlushThresholdTime() time.Duration {
	return c.flushThresholdTime
}

// MaxFlushSizeBytes returns the maximum number of bytes written in a
// single flush operation.
func (c *Config) MaxFlushSizeBytes() int {
	return c.maxFlushSizeBytes
}

// MaxItemsToReadAtOnce returns the maximum batch size read from the
// upstream log per call.
func (c *Config) MaxItemsToReadAtOnce() int {
	return c.maxItemsToReadAtOnce
}

// MinReadTimeout returns the lower bound for the adaptive timeout used
// when polling the upstream log.
func (c *Config) MinReadTimeout() time.Duration {
	return c.minReadTimeout
}

// MaxReadTimeout returns the upper bound for the adaptive timeout used
// when polling the upstream log.
func (c *Config) MaxReadTimeout() time.Duration {
	return c.maxReadTimeout
}

// Properties re-serializes the resolved values under the namespace the
// config was loaded with. Loading the returned map yields an identical
// Config, which makes persisted effective configuration round-trippable.
func (c *Config) Properties() map[string]string {
	return map[string]string{
		properties.Qualify(c.namespace, PropertyFlushThresholdBytes):  strconv.Itoa(c.flushThresholdBytes),
		properties.Qualify(c.namespace, PropertyFlushThresholdMillis): strconv.FormatInt(c.flushThresholdTime.Milliseconds(), 10),
		properties.Qualify(c.namespace, PropertyMaxFlushSizeBytes):    strconv.Itoa(c.maxFlushSizeBytes),
		properties.Qualify(c.namespace, PropertyMaxItemsToReadAtOnce): strconv.Itoa(c.maxItemsToReadAtOnce),
		properties.Qualify(c.namespace, PropertyMinReadTimeoutMillis): strconv.FormatInt(c.minReadTimeout.Milliseconds(), 10),
		properties.Qualify(c.namespace, PropertyMaxReadTimeoutMillis): strconv.FormatInt(c.maxReadTimeout.Milliseconds(), 10),
	}
}

// String returns a compact summary of the resolved values
func (c *Config) String() string {
	return fmt.Sprintf(
		"writer config [%s]: flushThreshold=%dB/%s maxFlushSize=%dB maxItems=%d readTimeout=[%s,%s]",
		c.namespace, c.flushThresholdBytes, c.flushThresholdTime, c.maxFlushSizeBytes,
		c.maxItemsToReadAtOnce, c.minReadTimeout, c.maxReadTimeout)
}
