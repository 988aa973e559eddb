package conv

import (
	"math"
	"testing"
)

func TestIntToUint32(t *testing.T) {
	tests := []struct {
		name      string
		in        int
		want      uint32
		wantPanic bool
	}{
		{name: "zero", in: 0, want: 0},
		{name: "small", in: 42, want: 42},
		{name: "max uint32", in: math.MaxUint32, want: math.MaxUint32},
		{name: "negative panics", in: -1, wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if tt.wantPanic && r == nil {
					t.Fatal("expected panic, got none")
				}
				if !tt.wantPanic && r != nil {
					t.Fatalf("unexpected panic: %v", r)
				}
			}()
			got := IntToUint32(tt.in)
			if !tt.wantPanic && got != tt.want {
				t.Errorf("IntToUint32(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestUint64ToUint32(t *testing.T) {
	tests := []struct {
		name      string
		in        uint64
		want      uint32
		wantPanic bool
	}{
		{name: "zero", in: 0, want: 0},
		{name: "max uint32", in: math.MaxUint32, want: math.MaxUint32},
		{name: "overflow panics", in: math.MaxUint32 + 1, wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if tt.wantPanic && r == nil {
					t.Fatal("expected panic, got none")
				}
				if !tt.wantPanic && r != nil {
					t.Fatalf("unexpected panic: %v", r)
				}
			}()
			got := Uint64ToUint32(tt.in)
			if !tt.wantPanic && got != tt.want {
				t.Errorf("Uint64ToUint32(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
