package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/internal/mapping"
)

const sample = `
collection_size: 2
overrides:
  - type: store.Order
    fields:
      Notes: size=4,len=3
      TotalCents:
        num: 1000
        comment: fixed total
      Secret: "-"
  - type: store.Product
    fields:
      Labels:
        size: 2
        key: label
`

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.MaxDepth, "default kept")
	assert.Equal(t, 2, cfg.CollectionSize)
	assert.Equal(t, 10, cfg.StringLength, "default kept")

	require.Len(t, cfg.Overrides, 2)
	order := cfg.Overrides[0]
	assert.Equal(t, "store.Order", order.Type)
	assert.Equal(t, "size=4,len=3", order.Fields["Notes"].Body)
	assert.Equal(t, "num=1000,comment='fixed total'", order.Fields["TotalCents"].Body)
	assert.Equal(t, "-", order.Fields["Secret"].Body)
	assert.Equal(t, "size=2,key=label", cfg.Overrides[1].Fields["Labels"].Body)
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"syntax", "max_depth: [", "failed to parse config YAML"},
		{"field shape", "overrides:\n  - type: a.B\n    fields:\n      X: [1, 2]\n", "must be a string or a mapping"},
		{"negative depth", "max_depth: -1", "max_depth must not be negative"},
		{"negative size", "collection_size: -2", "collection_size must not be negative"},
		{"bad type", "overrides:\n  - type: Order\n", `type "Order" is not of the form alias.Name`},
		{"duplicate type", "overrides:\n  - type: a.B\n  - type: a.B\n", "type a.B is overridden twice"},
		{"bad tag", "overrides:\n  - type: a.B\n    fields:\n      X: len=many\n", "a.B.X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	t.Parallel()

	err := Validate(Config{
		MaxDepth:     -1,
		StringLength: -1,
		Overrides: []TypeOverride{{
			Type: "a.B",
			Fields: map[string]FieldSpec{
				"X": {Body: "size=-1"},
				"Y": {Body: "colour=red"},
			},
		}},
	})

	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, mapping.ErrInvalidCount)
	assert.ErrorIs(t, err, mapping.ErrUnknownAttribute)
	assert.ErrorContains(t, err, "max_depth")
	assert.ErrorContains(t, err, "string_length")

	assert.NoError(t, Validate(Default()))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Overrides, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestFieldOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	overrides := cfg.FieldOverrides()
	require.Contains(t, overrides, "store.Order")

	notes := overrides["store.Order"]["Notes"]
	require.NotNil(t, notes.Size)
	assert.Equal(t, 4, *notes.Size)
	assert.True(t, overrides["store.Order"]["Secret"].Exclude)
	assert.Equal(t, "label", overrides["store.Product"]["Labels"].Key)
}
