package stream

import (
	"net"
	"testing"
	"time"

	"github.com/flarekv/respd/resp"
)

// TestConnReadFrameAcrossPartialWrites verifies that ReadFrame
// reassembles a frame delivered across several short writes to the
// underlying connection, the same partial-read scenario a real TCP
// socket produces under load.
func TestConnReadFrameAcrossPartialWrites(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	defer serverSide.Close()

	want := resp.Array{resp.BulkString("get"), resp.BulkString("a")}
	encoded := want.Encode()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < len(encoded); i++ {
			clientSide.Write(encoded[i : i+1])
		}
	}()

	sc := NewConn(serverSide)
	got, err := sc.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}
	arr, ok := got.(resp.Array)
	if !ok || len(arr) != 2 {
		t.Fatalf("ReadFrame = %#v", got)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("writer goroutine did not finish")
	}
}

// TestConnReadFramePipelinesWithoutExtraReads verifies that two frames
// written in a single burst are served one at a time from the buffered
// remainder, without the reader blocking on the socket again.
func TestConnReadFramePipelinesWithoutExtraReads(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	defer serverSide.Close()

	first := resp.Array{resp.BulkString("get"), resp.BulkString("a")}
	second := resp.Array{resp.BulkString("get"), resp.BulkString("b")}
	payload := append(append([]byte{}, first.Encode()...), second.Encode()...)

	go func() {
		clientSide.Write(payload)
	}()

	sc := NewConn(serverSide)

	got1, err := sc.ReadFrame()
	if err != nil {
		t.Fatalf("first ReadFrame failed: %v", err)
	}
	if _, ok := got1.(resp.Array); !ok {
		t.Fatalf("first ReadFrame = %#v", got1)
	}

	got2, err := sc.ReadFrame()
	if err != nil {
		t.Fatalf("second ReadFrame failed: %v", err)
	}
	if _, ok := got2.(resp.Array); !ok {
		t.Fatalf("second ReadFrame = %#v", got2)
	}
}

func TestConnWriteFrame(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()
	defer serverSide.Close()

	sc := NewConn(serverSide)
	want := resp.SimpleString("OK")

	go func() {
		sc.WriteFrame(want)
	}()

	buf := make([]byte, len(want.Encode()))
	if _, err := readFull(clientSide, buf); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(buf) != string(want.Encode()) {
		t.Fatalf("WriteFrame wrote %q, want %q", buf, want.Encode())
	}
}

func readFull(conn net.Conn, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
