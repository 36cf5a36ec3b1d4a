package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID         string    `json:"id"`
	Quadrances [3]string `json:"quadrances"`
	Collinear  bool      `json:"collinear,omitempty"`
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAreInterchangeable(t *testing.T) {
	in := record{ID: "t1", Quadrances: [3]string{"1/2", "1/4", "1/6"}}

	for _, enc := range []Codec{JSON{}, GoJSON{}} {
		for _, dec := range []Codec{JSON{}, GoJSON{}} {
			t.Run(enc.Name()+"->"+dec.Name(), func(t *testing.T) {
				data, err := enc.Marshal(in)
				require.NoError(t, err)

				var out record
				require.NoError(t, dec.Unmarshal(data, &out))
				assert.Equal(t, in, out)
			})
		}
	}
}

func TestGoJSONAppend(t *testing.T) {
	dst := []byte("prefix:")
	out, err := GoJSON{}.Append(dst, record{ID: "a"})
	require.NoError(t, err)
	assert.Equal(t, `prefix:{"id":"a","quadrances":["","",""]}`, string(out))
}

func TestAppendLine(t *testing.T) {
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			buf := []byte("old")
			out, err := AppendLine(c, buf[:0], record{ID: "a"})
			require.NoError(t, err)
			assert.Equal(t, "{\"id\":\"a\",\"quadrances\":[\"\",\"\",\"\"]}\n", string(out))

			_, err = AppendLine(c, nil, make(chan int))
			assert.Error(t, err)
		})
	}
}

func TestMustMarshal(t *testing.T) {
	assert.Equal(t, `{"id":"x","quadrances":["","",""]}`, string(MustMarshal(nil, record{ID: "x"})))
	assert.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
}
