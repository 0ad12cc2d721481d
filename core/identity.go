package core

// SerialLength is the number of characters in a serial number
const SerialLength = 8

// IdentitySource exposes the four immutable hardware identifier words
type IdentitySource interface {
	IdentityWords() [4]uint32
}

var identitySource IdentitySource

// SetIdentitySource is called by target-specific code to register the chip ID source.
func SetIdentitySource(s IdentitySource) {
	identitySource = s
}

// MustIdentity returns the configured source or panics if missing.
func MustIdentity() IdentitySource {
	if identitySource == nil {
		panic("identity source not configured")
	}
	return identitySource
}

// SerialNumber returns the board serial number
func SerialNumber() string {
	return EncodeSerial(MustIdentity().IdentityWords())
}

// EncodeSerial sums the identifier words and renders the result as
// eight uppercase hex digits, most significant nibble first.
func EncodeSerial(words [4]uint32) string {
	var buf [SerialLength]byte
	return string(AppendSerial(buf[:0], words))
}

// AppendSerial appends the serial number for words to dst
func AppendSerial(dst []byte, words [4]uint32) []byte {
	id := words[0] + words[1] + words[2] + words[3]
	for i := SerialLength - 1; i >= 0; i-- {
		c := byte((id>>(4*uint(i)))&0xF) + '0'
		if c > '9' {
			c += 'A' - '9' - 1
		}
		dst = append(dst, c)
	}
	return dst
}
