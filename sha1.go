package main

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
)

// The size of a SHA-1 digest in bytes.
const digestSize = 20

// The block size of SHA-1 in bytes.
const blockSize = 64

// Largest message whose bit length fits the 64-bit length field.
const maxMessageBytes = 1<<61 - 1

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

const (
	k0 = 0x5A827999
	k1 = 0x6ED9EBA1
	k2 = 0x8F1BBCDC
	k3 = 0xCA62C1D6
)

// ErrMessageTooLong is returned for messages longer than 2^61-1 bytes, whose
// bit length does not fit the 64-bit length field of the padding.
var ErrMessageTooLong = errors.New("sha1: message length does not fit in 64 bits")

// state holds the five running hash words carried across blocks.
type state [5]uint32

func initialState() state {
	return state{init0, init1, init2, init3, init4}
}

// Digest computes the SHA-1 digest of message and returns it as a 40-character
// lowercase hexadecimal string. The whole message is buffered; there is no
// incremental interface.
func Digest(message []byte) (string, error) {
	if uint64(len(message)) > maxMessageBytes {
		return "", ErrMessageTooLong
	}
	padded := pad(message)
	s := initialState()
	for offset := 0; offset < len(padded); offset += blockSize {
		s = compress(s, padded[offset:offset+blockSize])
	}
	return s.hexString(), nil
}

// leftRotate rotates the 32-bit word n left by b positions. Bits shifted out
// the top re-enter at the bottom.
func leftRotate(n uint32, b uint) uint32 {
	return n<<b | n>>(32-b)
}

// pad appends the trailing 1 bit, the zero run, and the 64-bit big-endian bit
// length of the original message. The result is an exact multiple of the
// block size.
func pad(message []byte) []byte {
	bitLen := uint64(len(message)) * 8

	padded := make([]byte, 0, (len(message)/blockSize+2)*blockSize)
	padded = append(padded, message...)
	padded = append(padded, 0x80)
	for len(padded)%blockSize != blockSize-8 {
		padded = append(padded, 0)
	}

	var length [8]byte
	binary.BigEndian.PutUint64(length[:], bitLen)
	return append(padded, length[:]...)
}

// compress runs the 80 rounds of the compression function over one 64-byte
// block and folds the result into s, returning the next state. The input
// state is not modified.
func compress(s state, block []byte) state {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = leftRotate(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]
	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = d ^ (b & (c ^ d))
			k = k0
		case i < 40:
			f = b ^ c ^ d
			k = k1
		case i < 60:
			f = (b & c) | (b & d) | (c & d)
			k = k2
		default:
			f = b ^ c ^ d
			k = k3
		}
		temp := leftRotate(a, 5) + f + e + k + w[i]
		e = d
		d = c
		c = leftRotate(b, 30)
		b = a
		a = temp
	}

	return state{s[0] + a, s[1] + b, s[2] + c, s[3] + d, s[4] + e}
}

func (s state) hexString() string {
	sum := make([]byte, digestSize)
	for i, h := range s {
		binary.BigEndian.PutUint32(sum[i*4:], h)
	}
	return hex.EncodeToString(sum)
}
