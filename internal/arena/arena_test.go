package arena

import (
	"math"
	"testing"
)

func TestArenaAllocAndRelease(t *testing.T) {
	a := New()

	buf, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	for i := range buf {
		buf[i] = 0xff
	}

	a.Release()

	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not zeroed after Release: 0x%02x", i, b)
		}
	}
}

func TestArenaAllocNegative(t *testing.T) {
	a := New()
	if _, err := a.Alloc(-1); err != ErrOOM {
		t.Fatalf("got %v, want ErrOOM", err)
	}
}

func TestCheckedMul(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int
		want    int
		wantErr bool
	}{
		{"zero operand", 0, 100, 0, false},
		{"normal", 17, 2, 34, false},
		{"overflow", math.MaxInt, 2, 0, true},
		{"negative", -1, 5, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckedMul(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}
