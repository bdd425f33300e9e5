package codec

import (
	kerrors "github.com/PolarWolf314/campus/internal/errors"
)

// XORCipher is a repeating-key XOR transform.
type XORCipher struct {
	key []byte
}

// NewXORCipher returns a cipher for key. The key is copied.
func NewXORCipher(key []byte) (*XORCipher, error) {
	if len(key) == 0 {
		return nil, kerrors.ErrEmptyKey
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &XORCipher{key: k}, nil
}

// Encode returns data XORed with the key. The input is not modified.
func (c *XORCipher) Encode(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ c.key[i%len(c.key)]
	}
	return out
}

// Decode is identical to Encode.
func (c *XORCipher) Decode(data []byte) []byte {
	return c.Encode(data)
}

// XOR applies the repeating-key transform in one call.
func XOR(data, key []byte) ([]byte, error) {
	c, err := NewXORCipher(key)
	if err != nil {
		return nil, err
	}
	return c.Encode(data), nil
}
