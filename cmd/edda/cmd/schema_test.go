package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/edda/pkg/codec"
)

func TestParseCellValue(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		isHex bool
		want  []byte
		fails bool
	}{
		{name: "plain string", raw: "alice", want: []byte("alice")},
		{name: "hex", raw: "0000002a", isHex: true, want: []byte{0x00, 0x00, 0x00, 0x2A}},
		{name: "hex with prefix", raw: "0x0000002A", isHex: true, want: []byte{0x00, 0x00, 0x00, 0x2A}},
		{name: "invalid hex", raw: "zz", isHex: true, fails: true},
		{name: "empty", raw: "", want: []byte{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseCellValue(tc.raw, tc.isHex)
			if tc.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "NULL", formatValue(codec.Null[any]{}))
	assert.Equal(t, "42", formatValue(codec.Null[any]{V: int32(42), Valid: true}))
	assert.Equal(t, "0x00ff", formatValue([]byte{0x00, 0xFF}))
	assert.Equal(t, "alice", formatValue("alice"))
	assert.Equal(t, "3.5", formatValue(3.5))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList("a, b ,c"))
	assert.Equal(t, []string{"solo"}, splitList("solo"))
}
