package resp

import "bytes"

const nullArrayWire = "*-1\r\n"

// Array is an ordered sequence of Frame, wire form
// "*<count>\r\n<frame>...". Nested frames contribute their own CRLFs; the
// count denotes element count, not byte length.
type Array []Frame

func (Array) frameVariant() {}

// Encode implements Frame.
func (a Array) Encode() []byte {
	buf := make([]byte, 0, 16)
	buf = append(buf, '*')
	buf = appendUint(buf, uint64(len(a)))
	buf = append(buf, '\r', '\n')
	for _, elem := range a {
		buf = append(buf, elem.Encode()...)
	}
	return buf
}

// NullArray is the dedicated null array sentinel, wire form "*-1\r\n".
type NullArray struct{}

func (NullArray) frameVariant() {}

// Encode implements Frame.
func (NullArray) Encode() []byte {
	return []byte(nullArrayWire)
}

func decodeArray(buf *bytes.Buffer) (Frame, error) {
	data := buf.Bytes()
	if len(data) == 0 {
		return nil, ErrIncomplete
	}
	if data[0] != '*' {
		return nil, InvalidFrameTypeError(data[0])
	}

	if takeFixed(data, nullArrayWire) == nil {
		buf.Next(len(nullArrayWire))
		return NullArray{}, nil
	}

	end, count, err := parseLength(data, '*')
	if err != nil {
		return nil, err
	}

	headerLen := end + crlfLen
	elemsLen, err := containerElementsLength(data[headerLen:], count)
	if err != nil {
		return nil, err
	}
	if len(data) < headerLen+elemsLen {
		return nil, ErrIncomplete
	}

	buf.Next(headerLen)
	elems := make(Array, 0, count)
	for i := int64(0); i < count; i++ {
		frame, decErr := Decode(buf)
		if decErr != nil {
			return nil, decErr
		}
		elems = append(elems, frame)
	}
	return elems, nil
}

func expectArrayLength(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, ErrIncomplete
	}
	if data[0] != '*' {
		return 0, InvalidFrameTypeError(data[0])
	}
	if takeFixed(data, nullArrayWire) == nil {
		return len(nullArrayWire), nil
	}
	end, count, err := parseLength(data, '*')
	if err != nil {
		return 0, err
	}
	headerLen := end + crlfLen
	elemsLen, err := containerElementsLength(data[headerLen:], count)
	if err != nil {
		return 0, err
	}
	return headerLen + elemsLen, nil
}

// containerElementsLength sums ExpectLength over count consecutive frames
// starting at the head of data, without materializing any of them. It is
// the primitive total_length uses to verify an entire array or set is
// buffered before the decoder commits to recursing into it.
func containerElementsLength(data []byte, count int64) (int, error) {
	total := 0
	for i := int64(0); i < count; i++ {
		if total > len(data) {
			return 0, ErrIncomplete
		}
		n, err := ExpectLength(data[total:])
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
