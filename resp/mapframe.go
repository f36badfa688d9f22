package resp

import (
	"bytes"
	"sort"
)

// Map is an ordered mapping from SimpleString key to Frame value, wire
// form "%<count>\r\n(<key><value>)...". Encoding always sorts keys
// ascending so two Maps with identical entries produce byte-identical
// output, regardless of insertion order.
type Map map[string]Frame

func (Map) frameVariant() {}

// Encode implements Frame.
func (m Map) Encode() []byte {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := make([]byte, 0, 16)
	buf = append(buf, '%')
	buf = appendUint(buf, uint64(len(m)))
	buf = append(buf, '\r', '\n')
	for _, k := range keys {
		buf = append(buf, SimpleString(k).Encode()...)
		buf = append(buf, m[k].Encode()...)
	}
	return buf
}

func decodeMap(buf *bytes.Buffer) (Frame, error) {
	data := buf.Bytes()
	end, count, err := parseLength(data, '%')
	if err != nil {
		return nil, err
	}

	headerLen := end + crlfLen
	pairsLen, err := mapPairsLength(data[headerLen:], count)
	if err != nil {
		return nil, err
	}
	if len(data) < headerLen+pairsLen {
		return nil, ErrIncomplete
	}

	buf.Next(headerLen)
	m := make(Map, count)
	for i := int64(0); i < count; i++ {
		keyFrame, decErr := Decode(buf)
		if decErr != nil {
			return nil, decErr
		}
		key, ok := keyFrame.(SimpleString)
		if !ok {
			return nil, InvalidFrameTypeError(0)
		}
		valueFrame, decErr := Decode(buf)
		if decErr != nil {
			return nil, decErr
		}
		m[string(key)] = valueFrame
	}
	return m, nil
}

func expectMapLength(data []byte) (int, error) {
	end, count, err := parseLength(data, '%')
	if err != nil {
		return 0, err
	}
	headerLen := end + crlfLen
	pairsLen, err := mapPairsLength(data[headerLen:], count)
	if err != nil {
		return 0, err
	}
	return headerLen + pairsLen, nil
}

// mapPairsLength sums ExpectLength over count alternating
// (SimpleString, Frame) pairs, mirroring total_length's map case.
func mapPairsLength(data []byte, count int64) (int, error) {
	total := 0
	for i := int64(0); i < count; i++ {
		if total > len(data) {
			return 0, ErrIncomplete
		}
		keyLen, err := expectSimpleFrameLength(data[total:], '+')
		if err != nil {
			return 0, err
		}
		total += keyLen

		if total > len(data) {
			return 0, ErrIncomplete
		}
		valLen, err := ExpectLength(data[total:])
		if err != nil {
			return 0, err
		}
		total += valLen
	}
	return total, nil
}
