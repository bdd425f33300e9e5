// Package codec provides the byte-level transforms used by the record store.
//
// Each persisted line is produced by two reversible steps applied to the
// serialized record:
//
//	line = ToText(XOR(utf8(record), key))
//
// # Cipher
//
// XOR combines every input byte with the key repeated cyclically. The
// operation is its own inverse, so XORCipher.Encode and XORCipher.Decode are
// the same function. An empty key is rejected with errors.ErrEmptyKey.
//
// The cipher obfuscates files against casual reading. It is not
// cryptographically secure: anyone holding one plaintext line can recover
// the key.
//
// # Transport Text
//
// ToText writes two lowercase hexadecimal digits per byte so that ciphered
// bytes fit on a single text line. FromText is the exact inverse and returns
// a *errors.FormatError for odd-length input or non-hexadecimal characters.
// Uppercase digits are accepted on input.
package codec
