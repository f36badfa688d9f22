package resp

import (
	"bytes"
	"strconv"
)

// Double is an IEEE-754 binary64 value, wire form
// ",[+|-]<integral>[.<fractional>][<E|e>[sign]<exponent>]\r\n".
type Double float64

func (Double) frameVariant() {}

// Encode implements Frame.
func (d Double) Encode() []byte {
	buf := make([]byte, 0, 24)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, float64(d), 'g', -1, 64)
	buf = append(buf, '\r', '\n')
	return buf
}

func decodeDouble(buf *bytes.Buffer) (Frame, error) {
	data := buf.Bytes()
	end, err := scanSimple(data, ',')
	if err != nil {
		return nil, err
	}
	text := string(data[1:end])
	f, convErr := strconv.ParseFloat(text, 64)
	if convErr != nil {
		return nil, &ParseFloatError{Text: text, Err: convErr}
	}
	buf.Next(end + crlfLen)
	return Double(f), nil
}
