package edid

import "bytes"

const (
	textStart      = 5
	textTerminator = 0x0A
)

// DecodeText returns the ASCII payload of a text descriptor. The field ends at
// the first line feed or at the end of the descriptor; trailing blanks and
// control bytes are dropped and everything else is kept verbatim.
func DecodeText(d *Descriptor) string {
	text := d[textStart:]
	if i := bytes.IndexByte(text, textTerminator); i >= 0 {
		text = text[:i]
	}
	end := len(text)
	for end > 0 && (text[end-1] <= ' ' || text[end-1] == 0x7F) {
		end--
	}
	return string(text[:end])
}
