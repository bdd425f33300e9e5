package codec

import (
	"encoding/hex"
	"fmt"

	kerrors "github.com/PolarWolf314/campus/internal/errors"
)

// ToText returns the lowercase hexadecimal form of data.
func ToText(data []byte) string {
	return hex.EncodeToString(data)
}

// FromText decodes hexadecimal text produced by ToText.
func FromText(text string) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, kerrors.NewFormatError(fmt.Sprintf("odd transport text length %d", len(text)), nil)
	}
	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, kerrors.NewFormatError("invalid transport text", err)
	}
	return data, nil
}
