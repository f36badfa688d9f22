package resp

import "bytes"

// ErrorFrame is a short run of UTF-8-lossy text containing no CR or LF,
// wire form "-<text>\r\n". It is a value carried over the wire, not a Go
// error -- the server turns a command parse error into an ErrorFrame and
// sends it as the reply Frame.
type ErrorFrame string

func (ErrorFrame) frameVariant() {}

// Encode implements Frame.
func (e ErrorFrame) Encode() []byte {
	buf := make([]byte, 0, len(e)+3)
	buf = append(buf, '-')
	buf = append(buf, e...)
	buf = append(buf, '\r', '\n')
	return buf
}

func decodeError(buf *bytes.Buffer) (Frame, error) {
	data := buf.Bytes()
	end, err := scanSimple(data, '-')
	if err != nil {
		return nil, err
	}
	text := utf8Lossy(data[1:end])
	buf.Next(end + crlfLen)
	return ErrorFrame(text), nil
}
