// Package cipher implements the repeating-key letter subtraction cipher over
// the lowercase alphabet a-z.
package cipher

const alphabetSize = 26

// Decode recovers plaintext from ciphertext with a repeating key:
// plain[i] = (key[i mod len(key)] - cipher[i]) mod 26.
// Both inputs must be lowercase a-z. An empty key leaves the text unchanged.
func Decode(ciphertext, key string) string {
	return subtract(key, ciphertext)
}

// Encode is the inverse of Decode: cipher[i] = (key[i mod len(key)] - plain[i]) mod 26.
// Subtraction from the key is its own inverse, so the formula is the same.
func Encode(plaintext, key string) string {
	return subtract(key, plaintext)
}

func subtract(key, text string) string {
	if key == "" {
		return text
	}
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		k := int(key[i%len(key)] - 'a')
		c := int(text[i] - 'a')
		out[i] = byte('a' + (k-c+alphabetSize)%alphabetSize)
	}
	return string(out)
}
