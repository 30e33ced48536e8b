package properties

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajesh05js/pravega/errors"
)

func testProps(m map[string]string) *Properties {
	return New(FromMap(m), "writer")
}

func TestProperties_Key(t *testing.T) {
	p := testProps(nil)
	assert.Equal(t, "writer.flushThresholdBytes", p.Key("flushThresholdBytes"))
	assert.Equal(t, "writer", p.Namespace())

	unscoped := New(FromMap(nil), "")
	assert.Equal(t, "flushThresholdBytes", unscoped.Key("flushThresholdBytes"))
}

func TestProperties_NamespaceIsolation(t *testing.T) {
	src := FromMap(map[string]string{
		"writer.maxItemsToReadAtOnce":     "50",
		"durablelog.maxItemsToReadAtOnce": "75",
	})

	writer := New(src, "writer")
	durablelog := New(src, "durablelog")

	wv, err := writer.Int32Default("maxItemsToReadAtOnce", 100)
	require.NoError(t, err)
	dv, err := durablelog.Int32Default("maxItemsToReadAtOnce", 100)
	require.NoError(t, err)

	assert.Equal(t, int32(50), wv)
	assert.Equal(t, int32(75), dv)
}

func TestProperties_String(t *testing.T) {
	p := testProps(map[string]string{"writer.name": "segment-writer"})

	v, err := p.String("name")
	require.NoError(t, err)
	assert.Equal(t, "segment-writer", v)

	_, err = p.String("missing")
	require.Error(t, err)
	assert.True(t, errors.IsMissingProperty(err))
	assert.Equal(t, "writer.missing", errors.Property(err))
}

func TestProperties_StringDefault(t *testing.T) {
	p := testProps(map[string]string{"writer.name": "segment-writer"})
	assert.Equal(t, "segment-writer", p.StringDefault("name", "fallback"))
	assert.Equal(t, "fallback", p.StringDefault("missing", "fallback"))
}

func TestProperties_Int32Default(t *testing.T) {
	tests := []struct {
		name    string
		source  map[string]string
		def     int32
		want    int32
		wantErr bool
	}{
		{
			name:   "present value wins over default",
			source: map[string]string{"writer.flushThresholdBytes": "1024"},
			def:    4194304,
			want:   1024,
		},
		{
			name:   "absent key yields default",
			source: map[string]string{},
			def:    4194304,
			want:   4194304,
		},
		{
			name:   "negative values parse",
			source: map[string]string{"writer.flushThresholdBytes": "-1"},
			want:   -1,
		},
		{
			name:   "surrounding whitespace tolerated",
			source: map[string]string{"writer.flushThresholdBytes": " 512 "},
			want:   512,
		},
		{
			name:    "non-numeric fails, not defaulted",
			source:  map[string]string{"writer.flushThresholdBytes": "abc"},
			def:     4194304,
			wantErr: true,
		},
		{
			name:    "float literal fails 32-bit parse",
			source:  map[string]string{"writer.flushThresholdBytes": "1.5"},
			wantErr: true,
		},
		{
			name:    "value overflows 32 bits",
			source:  map[string]string{"writer.flushThresholdBytes": "4294967296"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProps(tt.source)
			v, err := p.Int32Default("flushThresholdBytes", tt.def)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidPropertyFormat(err))
				assert.Equal(t, "writer.flushThresholdBytes", errors.Property(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestProperties_Int64Default(t *testing.T) {
	p := testProps(map[string]string{
		"writer.maxReadTimeoutMillis": "1800000",
		"writer.badMillis":            "30s",
	})

	v, err := p.Int64Default("maxReadTimeoutMillis", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1800000), v)

	v, err = p.Int64Default("absentMillis", 30000)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), v)

	_, err = p.Int64Default("badMillis", 0)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidPropertyFormat(err))
}

func TestProperties_Int32Required(t *testing.T) {
	p := testProps(map[string]string{"writer.maxItemsToReadAtOnce": "100"})

	v, err := p.Int32("maxItemsToReadAtOnce")
	require.NoError(t, err)
	assert.Equal(t, int32(100), v)

	_, err = p.Int32("missing")
	require.Error(t, err)
	assert.True(t, errors.IsMissingProperty(err))
}

func TestProperties_Int64Required(t *testing.T) {
	p := testProps(nil)
	_, err := p.Int64("minReadTimeoutMillis")
	require.Error(t, err)
	assert.True(t, errors.IsMissingProperty(err))
}

func TestProperties_BoolDefault(t *testing.T) {
	p := testProps(map[string]string{
		"writer.enabled": "true",
		"writer.broken":  "yes",
	})

	v, err := p.BoolDefault("enabled", false)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = p.BoolDefault("absent", true)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = p.BoolDefault("broken", false)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidPropertyFormat(err))
}

func TestProperties_DurationMillisDefault(t *testing.T) {
	p := testProps(map[string]string{"writer.flushThresholdMillis": "15000"})

	d, err := p.DurationMillisDefault("flushThresholdMillis", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, d)

	d, err = p.DurationMillisDefault("absentMillis", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)
}

func TestProperties_Has(t *testing.T) {
	p := testProps(map[string]string{"writer.flushThresholdBytes": "0"})
	assert.True(t, p.Has("flushThresholdBytes"))
	assert.False(t, p.Has("flushThresholdMillis"))
}
