package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type info struct {
	Name      string  `json:"catalog_name"`
	Type      string  `json:"catalog_type"`
	TotalRows int64   `json:"total_rows"`
	Epoch     string  `json:"epoch,omitempty"`
	Ratio     float64 `json:"ratio"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}
	c, ok := ByName("")
	require.True(t, ok)
	assert.Equal(t, Default, c)

	_, ok = ByName("msgpack")
	assert.False(t, ok)
	assert.Equal(t, "go-json", Default.Name())
}

func mustMarshalFile(t testing.TB, c Codec, v any) []byte {
	t.Helper()
	out, err := MarshalFile(c, v)
	require.NoError(t, err)
	return out
}

func TestCodecsAgree(t *testing.T) {
	in := info{Name: "gaia", Type: "object", TotalRows: 1_811_709_771, Ratio: 0.25}

	std := mustMarshalFile(t, JSON{}, in)
	fast := mustMarshalFile(t, GoJSON{}, in)
	assert.JSONEq(t, string(std), string(fast))

	var a, b info
	require.NoError(t, JSON{}.Unmarshal(fast, &a))
	require.NoError(t, GoJSON{}.Unmarshal(std, &b))
	assert.Equal(t, in, a)
	assert.Equal(t, in, b)
}

// compactOnly hides MarshalIndent.
type compactOnly struct{ JSON }

func (compactOnly) MarshalIndent() {}

func TestMarshalFile(t *testing.T) {
	out, err := MarshalFile(nil, map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": 1\n}\n", string(out))

	out, err = MarshalFile(compactOnly{}, map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n", string(out))

	_, err = MarshalFile(JSON{}, make(chan int))
	assert.Error(t, err)
}

func BenchmarkCodec_Unmarshal_Info(b *testing.B) {
	data := mustMarshalFile(b, JSON{}, info{Name: "gaia", Type: "object", TotalRows: 42, Epoch: "J2000"})

	b.Run("stdlib", func(b *testing.B) {
		var sink info
		for b.Loop() {
			if err := (JSON{}).Unmarshal(data, &sink); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("go-json", func(b *testing.B) {
		var sink info
		for b.Loop() {
			if err := (GoJSON{}).Unmarshal(data, &sink); err != nil {
				b.Fatal(err)
			}
		}
	})
}
