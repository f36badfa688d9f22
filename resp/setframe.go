package resp

import "bytes"

// Set is an ordered sequence of Frame, wire form "~<count>\r\n<frame>...".
// It is shaped identically to Array on the wire -- set semantics (no
// duplicate members) are enforced by whoever constructs a Set, not by the
// decoder.
type Set []Frame

func (Set) frameVariant() {}

// Encode implements Frame.
func (s Set) Encode() []byte {
	buf := make([]byte, 0, 16)
	buf = append(buf, '~')
	buf = appendUint(buf, uint64(len(s)))
	buf = append(buf, '\r', '\n')
	for _, elem := range s {
		buf = append(buf, elem.Encode()...)
	}
	return buf
}

func decodeSet(buf *bytes.Buffer) (Frame, error) {
	data := buf.Bytes()
	end, count, err := parseLength(data, '~')
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
	elems := make(Set, 0, count)
	for i := int64(0); i < count; i++ {
		frame, decErr := Decode(buf)
		if decErr != nil {
			return nil, decErr
		}
		elems = append(elems, frame)
	}
	return elems, nil
}

func expectSetLength(data []byte) (int, error) {
	end, count, err := parseLength(data, '~')
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
