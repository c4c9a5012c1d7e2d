package timefmt

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	timeEncMode cbor.EncMode
	timeDecMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	timeEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create time CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	timeDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create time CBOR decoder mode: %v", err))
	}
}

// EncodeTime encodes t as a CBOR map with integer keys.
func EncodeTime(t Time) ([]byte, error) {
	return timeEncMode.Marshal(t)
}

// DecodeTime decodes a CBOR-encoded Time.
func DecodeTime(data []byte) (Time, error) {
	var t Time
	if err := timeDecMode.Unmarshal(data, &t); err != nil {
		return Time{}, fmt.Errorf("decode time: %w", err)
	}
	return t, nil
}
