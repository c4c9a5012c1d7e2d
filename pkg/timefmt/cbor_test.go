package timefmt

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTimeUsesIntegerKeys(t *testing.T) {
	data, err := EncodeTime(Time{Days: 1, Hours: 2, Minutes: 5, Seconds: 28.03})
	require.NoError(t, err)

	var raw map[int]any
	require.NoError(t, cbor.Unmarshal(data, &raw))

	assert.Len(t, raw, 4)
	assert.EqualValues(t, 1, raw[1])
	assert.EqualValues(t, 2, raw[2])
	assert.EqualValues(t, 5, raw[3])
	assert.Equal(t, 28.03, raw[4])
}

func TestDecodeTime(t *testing.T) {
	want := Time{Hours: 1, Minutes: 1, Seconds: 40.05689173}

	data, err := EncodeTime(want)
	require.NoError(t, err)

	got, err := DecodeTime(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "1 hour, 1 minute, 40.057 seconds", got.Format())
}

func TestDecodeTimeInvalid(t *testing.T) {
	_, err := DecodeTime([]byte{0xff})
	assert.Error(t, err)
}
