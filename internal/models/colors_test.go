package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorListValue(t *testing.T) {
	v, err := ColorList{"red", "navy"}.Value()
	require.NoError(t, err)
	require.Equal(t, `["red","navy"]`, v)
}

func TestColorListValueNil(t *testing.T) {
	v, err := ColorList(nil).Value()
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestColorListScan(t *testing.T) {
	var c ColorList
	require.NoError(t, c.Scan([]byte(`["red","navy"]`)))
	require.Equal(t, ColorList{"red", "navy"}, c)

	var fromString ColorList
	require.NoError(t, fromString.Scan(`["olive"]`))
	require.Equal(t, ColorList{"olive"}, fromString)
}

func TestColorListScanNull(t *testing.T) {
	c := ColorList{"stale"}
	require.NoError(t, c.Scan(nil))
	require.Nil(t, c)

	var empty ColorList
	require.NoError(t, empty.Scan([]byte{}))
	require.Nil(t, empty)
}

func TestColorListScanRejectsOtherTypes(t *testing.T) {
	var c ColorList
	require.Error(t, c.Scan(42))
}
