package json_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguimbarda/min-lazy/lazy"
	lazyjson "github.com/lguimbarda/min-lazy/lazy/json"
)

type event struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"`
}

func TestDecodeStream(t *testing.T) {
	input := `{"id":1,"kind":"open"}
{"id":2,"kind":"write"}
{"id":3,"kind":"close"}
`
	c := lazyjson.DecodeStream[event](strings.NewReader(input))

	want := []event{{ID: 1, Kind: "open"}, {ID: 2, Kind: "write"}, {ID: 3, Kind: "close"}}
	assert.Equal(t, want, c.Collect())
	assert.NoError(t, c.Err())
}

func TestDecodeStreamStopsOnMalformedValue(t *testing.T) {
	c := lazyjson.DecodeStream[int](strings.NewReader("1 2 x 4"))

	assert.Equal(t, []int{1, 2}, c.Collect())

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, c.Err(), &syntaxErr)
}

func TestDecodeArray(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{name: "numbers", input: "[1, 2, 3]", want: []int{1, 2, 3}},
		{name: "empty array", input: "[]", want: []int{}},
		{name: "whitespace", input: "\n [ 4 ,\n5 ] \n", want: []int{4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := lazyjson.DecodeArray[int](strings.NewReader(tt.input))
			assert.Equal(t, tt.want, c.Collect())
			assert.NoError(t, c.Err())
		})
	}
}

func TestDecodeArrayRejectsNonArray(t *testing.T) {
	for _, input := range []string{`{"a":1}`, `1`, ``, `  `} {
		t.Run(input, func(t *testing.T) {
			c := lazyjson.DecodeArray[int](strings.NewReader(input))

			assert.False(t, c.HasMore())
			assert.ErrorIs(t, c.Err(), lazyjson.ErrNotArray)
		})
	}
}

func TestDecodeArrayTruncated(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{name: "only opening bracket", input: "[", want: []int{}},
		{name: "missing closing bracket", input: "[1,2", want: []int{1, 2}},
		{name: "trailing comma", input: "[1,2,", want: []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := lazyjson.DecodeArray[int](strings.NewReader(tt.input))
			assert.Equal(t, tt.want, c.Collect())
			assert.ErrorIs(t, c.Err(), io.ErrUnexpectedEOF)
		})
	}
}

func TestDecodeArrayIsIncremental(t *testing.T) {
	// Everything after the third element is garbage; taking two never sees it.
	c := lazyjson.DecodeArray[event](strings.NewReader(`[{"id":1},{"id":2},{"id":3}, nonsense`))

	got := lazy.Map[event](c.Take(2), func(e event) int { return e.ID })
	assert.Equal(t, []int{1, 2}, lazy.Collect(got))
	assert.NoError(t, c.Err())
}

func TestEncodeLines(t *testing.T) {
	var buf bytes.Buffer
	err := lazyjson.EncodeLines[event](lazy.Of(event{ID: 1, Kind: "a"}, event{ID: 2, Kind: "b"}), &buf)
	require.NoError(t, err)
	assert.Equal(t, "{\"id\":1,\"kind\":\"a\"}\n{\"id\":2,\"kind\":\"b\"}\n", buf.String())

	// Round trip through DecodeStream.
	back := lazyjson.DecodeStream[event](&buf)
	assert.Equal(t, []event{{ID: 1, Kind: "a"}, {ID: 2, Kind: "b"}}, back.Collect())
}

func TestEncodeLinesWriteError(t *testing.T) {
	boom := errors.New("broken pipe")
	err := lazyjson.EncodeLines[int](lazy.Of(1, 2), errWriter{boom})
	assert.ErrorIs(t, err, boom)
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }
