package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	v, err := StringList{"go", "sql"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["go","sql"]`, v)

	// nil 序列化为空数组而非 SQL NULL
	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestStringListScan(t *testing.T) {
	var s StringList
	require.NoError(t, s.Scan(`["python","automation"]`))
	assert.Equal(t, StringList{"python", "automation"}, s)

	require.NoError(t, s.Scan([]byte(`["go"]`)))
	assert.Equal(t, StringList{"go"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Nil(t, s)

	assert.Error(t, s.Scan(42))
}
