package utils

import "encoding/binary"

// BytesToWords decodes one 64 byte block into sixteen little-endian
// 32 bit words.
func BytesToWords(bytes *[64]uint8, words *[16]uint32) {
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(bytes[4*i:])
	}
}

// WordsToBytes serializes the four state words, each little-endian, in
// word order.
func WordsToBytes(words *[4]uint32, bytes *[16]uint8) {
	for i, w := range words {
		binary.LittleEndian.PutUint32(bytes[4*i:], w)
	}
}
