package asciiwalk_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/asciiwalk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	r := asciiwalk.NewRunner(asciiwalk.New())
	ctx := context.Background()

	rep, err := r.Run(ctx, "basic.txt", strings.NewReader(mapBasic))
	require.NoError(t, err)
	assert.Equal(t, "basic.txt", rep.Source)
	require.NotNil(t, rep.Result)
	assert.Empty(t, rep.Error)

	var buf bytes.Buffer
	require.NoError(t, asciiwalk.WriteText(&buf, rep))
	assert.Equal(t, "Letters: \"ACB\"\nPath as characters: \"@---A---+|C|+---+|+-B-x\"\n", buf.String())
}

func TestRunner_NoStart(t *testing.T) {
	r := asciiwalk.NewRunner(asciiwalk.New())

	rep, err := r.Run(context.Background(), "-", strings.NewReader("---x"))
	require.NoError(t, err, "a map without start is reported, not returned")
	assert.Nil(t, rep.Result)
	assert.Contains(t, rep.Error, "start marker not found")

	var buf bytes.Buffer
	require.NoError(t, asciiwalk.WriteText(&buf, rep))
	assert.Equal(t, "-: start marker not found\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	r := asciiwalk.NewRunner(asciiwalk.New())
	rep, err := r.Run(context.Background(), "v", strings.NewReader("@\n|\nA\n|\nx"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, asciiwalk.WriteJSON(&buf, rep))
	assert.JSONEq(t, `{"source":"v","result":{"letters":"A","characters":"@|A|x","steps":4,"status":"terminated"}}`, buf.String())
}
