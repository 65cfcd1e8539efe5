package json_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poolforge/reuse/pkg/json"
)

type statsDoc struct {
	Key  string `json:"key"`
	Gets int64  `json:"gets"`
}

func TestMarshalToBuffer(t *testing.T) {
	buf, err := json.MarshalToBuffer(statsDoc{Key: "ints", Gets: 3})
	require.NoError(t, err)
	defer json.PutBuffer(buf)

	var decoded statsDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, statsDoc{Key: "ints", Gets: 3}, decoded)
}

func TestMarshalToWriter_NoHTMLEscaping(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, json.MarshalToWriter(&out, map[string]string{"q": "a&b"}))
	assert.Contains(t, out.String(), "a&b")
}

func TestBufferPool_Reuse(t *testing.T) {
	buf := json.GetBuffer()
	buf.WriteString("leftover")
	json.PutBuffer(buf)

	// Buffers come back reset regardless of what the last user left in them.
	next := json.GetBuffer()
	defer json.PutBuffer(next)
	assert.Equal(t, 0, next.Len())
}
