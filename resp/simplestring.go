package resp

import "bytes"

// SimpleString is a short run of UTF-8-lossy text containing no CR or LF,
// wire form "+<text>\r\n".
type SimpleString string

func (SimpleString) frameVariant() {}

// Encode implements Frame.
func (s SimpleString) Encode() []byte {
	buf := make([]byte, 0, len(s)+3)
	buf = append(buf, '+')
	buf = append(buf, s...)
	buf = append(buf, '\r', '\n')
	return buf
}

func decodeSimpleString(buf *bytes.Buffer) (Frame, error) {
	data := buf.Bytes()
	end, err := scanSimple(data, '+')
	if err != nil {
		return nil, err
	}
	text := utf8Lossy(data[1:end])
	buf.Next(end + crlfLen)
	return SimpleString(text), nil
}
