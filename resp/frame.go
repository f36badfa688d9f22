package resp

import "bytes"

// Frame is the tagged sum of every RESP value respd accepts or emits.
// The variant set is closed to this package: Frame's unexported method
// seals the interface so a switch over a Frame's concrete type can be
// exhaustive, the way an enum-dispatched match would be in the source
// this codec is modeled on.
type Frame interface {
	// Encode consumes the frame and returns its canonical wire form.
	Encode() []byte

	frameVariant()
}

// Decode peeks the first byte of buf and routes to the decoder for the
// matching variant. A missing first byte reports ErrIncomplete; an
// unrecognized prefix reports InvalidFrameTypeError. If the chosen
// decoder reports ErrIncomplete, buf is left untouched so a retry after
// more bytes arrive succeeds; on any other error buf's state is
// unspecified and the caller should tear down the connection.
func Decode(buf *bytes.Buffer) (Frame, error) {
	data := buf.Bytes()
	if len(data) == 0 {
		return nil, ErrIncomplete
	}

	switch data[0] {
	case '+':
		return decodeSimpleString(buf)
	case '-':
		return decodeError(buf)
	case ':':
		return decodeInteger(buf)
	case '$':
		return decodeBulkString(buf)
	case '*':
		return decodeArray(buf)
	case '_':
		return decodeNull(buf)
	case '#':
		return decodeBoolean(buf)
	case ',':
		return decodeDouble(buf)
	case '%':
		return decodeMap(buf)
	case '~':
		return decodeSet(buf)
	default:
		return nil, InvalidFrameTypeError(data[0])
	}
}

// ExpectLength returns the total byte length of the frame rooted at the
// head of data without materializing it. Containers recurse into their
// elements; this is how the codec decides whether an entire frame -- and
// for containers, all of its nested frames -- is already buffered before
// committing to a decode.
func ExpectLength(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrIncomplete
	}

	switch data[0] {
	case '+':
		return expectSimpleFrameLength(data, '+')
	case '-':
		return expectSimpleFrameLength(data, '-')
	case ':':
		return expectSimpleFrameLength(data, ':')
	case '$':
		return expectBulkStringLength(data)
	case '*':
		return expectArrayLength(data)
	case '_':
		return expectFixedLength(data, '_', nullWire)
	case '#':
		return expectBooleanLength(data)
	case ',':
		return expectSimpleFrameLength(data, ',')
	case '%':
		return expectMapLength(data)
	case '~':
		return expectSetLength(data)
	default:
		return 0, InvalidFrameTypeError(data[0])
	}
}

func expectFixedLength(data []byte, prefix byte, wire string) (int, error) {
	if len(data) == 0 {
		return 0, ErrIncomplete
	}
	if data[0] != prefix {
		return 0, InvalidFrameTypeError(data[0])
	}
	if err := takeFixed(data, wire); err != nil {
		return 0, err
	}
	return len(wire), nil
}

func expectSimpleFrameLength(data []byte, prefix byte) (int, error) {
	end, err := scanSimple(data, prefix)
	if err != nil {
		return 0, err
	}
	return end + crlfLen, nil
}
