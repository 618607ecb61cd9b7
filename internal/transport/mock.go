package transport

import (
	"bytes"
	"io"
	"sync"
)

// MockTransport implements Transport for testing. Reads drain ReadData
// and report io.EOF once it is empty.
type MockTransport struct {
	mu        sync.Mutex
	ReadData  []byte
	ReadErr   error
	WriteData []byte
	WriteErr  error
	Closed    bool

	// ReadFunc allows custom read behavior for complex tests
	ReadFunc func(p []byte) (int, error)
}

// NewMock returns a mock whose reads yield input.
func NewMock(input string) *MockTransport {
	return &MockTransport{ReadData: []byte(input)}
}

func (m *MockTransport) Read(p []byte) (int, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	n := copy(p, m.ReadData)
	m.ReadData = m.ReadData[n:]
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (m *MockTransport) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	m.WriteData = append(m.WriteData, p...)
	return len(p), nil
}

func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// Name returns "mock".
func (m *MockTransport) Name() string {
	return "mock"
}

// Output returns everything written so far.
func (m *MockTransport) Output() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(bytes.Clone(m.WriteData))
}
