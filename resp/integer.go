package resp

import (
	"bytes"
	"strconv"
)

// Integer is a signed 64-bit value, wire form ":[+|-]<digits>\r\n". Encode
// never forces a leading sign for non-negative values.
type Integer int64

func (Integer) frameVariant() {}

// Encode implements Frame.
func (i Integer) Encode() []byte {
	buf := make([]byte, 0, 20)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(i), 10)
	buf = append(buf, '\r', '\n')
	return buf
}

func decodeInteger(buf *bytes.Buffer) (Frame, error) {
	data := buf.Bytes()
	end, err := scanSimple(data, ':')
	if err != nil {
		return nil, err
	}
	text := string(data[1:end])
	n, convErr := strconv.ParseInt(text, 10, 64)
	if convErr != nil {
		return nil, &ParseIntError{Text: text, Err: convErr}
	}
	buf.Next(end + crlfLen)
	return Integer(n), nil
}
