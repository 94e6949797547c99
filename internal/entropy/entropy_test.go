package entropy

import (
	"bytes"
	"testing"
)

func TestReadFillsBuffer(t *testing.T) {
	buf := make([]byte, 600) // spans more than two chunkSize-sized reads
	if err := Read(buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if bytes.Equal(buf, make([]byte, len(buf))) {
		t.Fatal("buffer is all zeros; getrandom likely did not run")
	}
}

func TestReadEmptyBuffer(t *testing.T) {
	if err := Read(nil); err != nil {
		t.Fatalf("Read(nil): %v", err)
	}
}

func TestReadIsNotDeterministic(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 32)
	if err := Read(a); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if err := Read(b); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("two independent reads produced identical output")
	}
}
