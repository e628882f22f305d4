package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmenityMapScan(t *testing.T) {
	var m AmenityMap
	require.NoError(t, m.Scan([]byte(`{"Leisure":["Pool","Gym"],"Safety":[]}`)))
	assert.Equal(t, []string{"Pool", "Gym"}, m["Leisure"])

	// Empty categories survive the round trip; absent and empty are both
	// representable.
	got, ok := m["Safety"]
	assert.True(t, ok)
	assert.Empty(t, got)

	require.NoError(t, m.Scan(nil))
	assert.NotNil(t, m)
}

func TestAmenityMapScanRejectsWrongShape(t *testing.T) {
	var m AmenityMap
	assert.Error(t, m.Scan([]byte(`["Pool","Gym"]`)))
	assert.Error(t, m.Scan([]byte(`{"Leisure":"Pool"}`)))
	assert.Error(t, m.Scan(42))
}

func TestAmenityMapValue(t *testing.T) {
	v, err := AmenityMap(nil).Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(v.([]byte)))

	v, err = AmenityMap{"Leisure": {"Pool"}}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"Leisure":["Pool"]}`, string(v.([]byte)))
}

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["AC","TV"]`)))
	assert.Equal(t, StringList{"AC", "TV"}, l)

	assert.Error(t, l.Scan([]byte(`{"AC":true}`)))

	require.NoError(t, l.Scan(nil))
	assert.NotNil(t, l)
}
