package auxcodec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetofonta/asd/auxcodec"
	"github.com/tetofonta/asd/auxtable"
	"github.com/tetofonta/asd/grid"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	g, err := grid.NewCustomGrid(1, 6, 6, []grid.Cell{{3, 3}})
	require.NoError(t, err)

	table := auxtable.Build(g, grid.Cell{5, 5}, 30)
	require.NotEmpty(t, table)

	var buf bytes.Buffer
	require.NoError(t, auxcodec.Encode(&buf, table))

	decoded, err := auxcodec.Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, table, decoded)
}

func TestEncodeDecode_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, auxcodec.Encode(&buf, auxtable.Table{}))

	decoded, err := auxcodec.Decode(&buf)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecode_MalformedStreamErrors(t *testing.T) {
	_, err := auxcodec.Decode(strings.NewReader("not a zlib stream"))
	assert.ErrorIs(t, err, auxcodec.ErrDecode)
}
