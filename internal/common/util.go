package common

// WipeByteArray zeroes a byte slice in place. Used to scrub plaintext
// passwords from memory once they have been handed off.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
