package resp

import "bytes"

const (
	booleanTrueWire  = "#t\r\n"
	booleanFalseWire = "#f\r\n"
)

// Boolean is the RESP3 boolean, wire form "#t\r\n" or "#f\r\n".
type Boolean bool

func (Boolean) frameVariant() {}

// Encode implements Frame.
func (b Boolean) Encode() []byte {
	if b {
		return []byte(booleanTrueWire)
	}
	return []byte(booleanFalseWire)
}

func decodeBoolean(buf *bytes.Buffer) (Frame, error) {
	data := buf.Bytes()
	if len(data) == 0 {
		return nil, ErrIncomplete
	}
	if data[0] != '#' {
		return nil, InvalidFrameTypeError(data[0])
	}
	if len(data) < len(booleanTrueWire) {
		return nil, ErrIncomplete
	}
	switch data[1] {
	case 't':
		if err := takeFixed(data, booleanTrueWire); err != nil {
			return nil, err
		}
		buf.Next(len(booleanTrueWire))
		return Boolean(true), nil
	case 'f':
		if err := takeFixed(data, booleanFalseWire); err != nil {
			return nil, err
		}
		buf.Next(len(booleanFalseWire))
		return Boolean(false), nil
	default:
		return nil, InvalidFrameDataError{Want: booleanTrueWire + " or " + booleanFalseWire}
	}
}

func expectBooleanLength(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrIncomplete
	}
	if data[0] != '#' {
		return 0, InvalidFrameTypeError(data[0])
	}
	if len(data) < len(booleanTrueWire) {
		return 0, ErrIncomplete
	}
	switch data[1] {
	case 't':
		if err := takeFixed(data, booleanTrueWire); err != nil {
			return 0, err
		}
		return len(booleanTrueWire), nil
	case 'f':
		if err := takeFixed(data, booleanFalseWire); err != nil {
			return 0, err
		}
		return len(booleanFalseWire), nil
	default:
		return 0, InvalidFrameDataError{Want: booleanTrueWire + " or " + booleanFalseWire}
	}
}
