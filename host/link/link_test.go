package link

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"neostrand/core"
	"neostrand/ledframe"
)

// mockPort scripts the device side of a session. An empty reply
// buffer reads as zero bytes with no error, like a timed-out serial
// read.
type mockPort struct {
	wrote   bytes.Buffer
	replies bytes.Buffer
}

func (m *mockPort) Read(b []byte) (int, error) {
	if m.replies.Len() == 0 {
		return 0, nil
	}
	return m.replies.Read(b)
}

func (m *mockPort) Write(b []byte) (int, error) {
	return m.wrote.Write(b)
}

func (m *mockPort) Close() error { return nil }
func (m *mockPort) Flush() error { return nil }

func TestPingWritesPacketAndReadsAck(t *testing.T) {
	m := &mockPort{}
	m.replies.WriteByte(ledframe.Ack)

	l := &Link{port: m}
	if err := l.Ping(); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	var want bytes.Buffer
	ledframe.WritePing(&want)
	if !bytes.Equal(m.wrote.Bytes(), want.Bytes()) {
		t.Errorf("wrote % x, want % x", m.wrote.Bytes(), want.Bytes())
	}
}

func TestInitStoresCount(t *testing.T) {
	m := &mockPort{}
	m.replies.WriteByte(ledframe.Ack)

	l := &Link{port: m}
	if err := l.Init(5); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if got := l.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
}

func TestFrameLengthMustMatchInit(t *testing.T) {
	m := &mockPort{}
	m.replies.WriteByte(ledframe.Ack)

	l := &Link{port: m}
	if err := l.Init(4); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sent := m.wrote.Len()

	if err := l.Frame(make([]core.RGB, 3)); err == nil {
		t.Fatalf("Frame accepted a length mismatch")
	}
	if m.wrote.Len() != sent {
		t.Errorf("mismatched frame still hit the wire")
	}
}

func TestNakBecomesDeviceError(t *testing.T) {
	m := &mockPort{}
	m.replies.Write([]byte{ledframe.Nak, ledframe.NakBadLength})

	l := &Link{port: m}
	err := l.Init(1000)
	var de ledframe.DeviceError
	if !errors.As(err, &de) || byte(de) != ledframe.NakBadLength {
		t.Fatalf("Init error = %v, want bad-length DeviceError", err)
	}
	if l.Count() != 0 {
		t.Errorf("rejected Init changed the stored count")
	}
}

func TestDeadlineReaderTimesOut(t *testing.T) {
	r := deadlineReader{port: &mockPort{}, deadline: time.Now().Add(-time.Millisecond)}
	if _, err := r.ReadByte(); !errors.Is(err, ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
}
