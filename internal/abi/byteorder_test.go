package abi

import (
	"bytes"
	"testing"
)

func TestAppendUint(t *testing.T) {
	tests := []struct {
		name  string
		bits  uint64
		width int
		order ByteOrder
		want  []byte
	}{
		{"u8", 0xAB, 1, LittleEndian, []byte{0xAB}},
		{"u8 big", 0xAB, 1, BigEndian, []byte{0xAB}},
		{"u16 little", 0x1234, 2, LittleEndian, []byte{0x34, 0x12}},
		{"u16 big", 0x1234, 2, BigEndian, []byte{0x12, 0x34}},
		{"u32 little", 1, 4, LittleEndian, []byte{0x01, 0x00, 0x00, 0x00}},
		{"u32 big", 1, 4, BigEndian, []byte{0x00, 0x00, 0x00, 0x01}},
		{"u64 little", 0x0102030405060708, 8, LittleEndian, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}},
		{"u64 big", 0x0102030405060708, 8, BigEndian, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendUint(nil, tt.bits, tt.width, tt.order)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("AppendUint(%#x, %d, %v) = % x, want % x", tt.bits, tt.width, tt.order, got, tt.want)
			}
		})
	}
}

func TestAppendUint_Appends(t *testing.T) {
	buf := []byte{0xFF}
	buf = AppendUint(buf, 0x1234, 2, BigEndian)
	want := []byte{0xFF, 0x12, 0x34}
	if !bytes.Equal(buf, want) {
		t.Errorf("got % x, want % x", buf, want)
	}
}

func TestReadUint(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		width int
		order ByteOrder
		want  uint64
	}{
		{"u8", []byte{0xAB}, 1, LittleEndian, 0xAB},
		{"u16 little", []byte{0x34, 0x12}, 2, LittleEndian, 0x1234},
		{"u16 big", []byte{0x12, 0x34}, 2, BigEndian, 0x1234},
		{"u32 little", []byte{0x01, 0x00, 0x00, 0x00}, 4, LittleEndian, 1},
		{"u32 big", []byte{0x00, 0x00, 0x00, 0x01}, 4, BigEndian, 1},
		{"u64 little", []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, 8, LittleEndian, 0x0102030405060708},
		{"u64 big", []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, 8, BigEndian, 0x0102030405060708},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadUint(tt.data, tt.width, tt.order)
			if got != tt.want {
				t.Errorf("ReadUint(% x, %d, %v) = %#x, want %#x", tt.data, tt.width, tt.order, got, tt.want)
			}
		})
	}
}

func TestAppendReadRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0x7F, 0x80, 0xFF, 0x1234, 0xFFFF, 0xDEADBEEF, ^uint64(0)}
	widths := []int{1, 2, 4, 8}
	orders := []ByteOrder{LittleEndian, BigEndian}

	for _, w := range widths {
		for _, o := range orders {
			for _, v := range values {
				masked := v & Mask(w)
				buf := AppendUint(nil, v, w, o)
				if len(buf) != w {
					t.Fatalf("width %d order %v: wrote %d bytes", w, o, len(buf))
				}
				got := ReadUint(buf, w, o)
				if got != masked {
					t.Errorf("width %d order %v value %#x: round trip = %#x, want %#x", w, o, v, got, masked)
				}
			}
		}
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		width int
		want  uint64
	}{
		{1, 0xFF},
		{2, 0xFFFF},
		{4, 0xFFFFFFFF},
		{8, ^uint64(0)},
	}
	for _, tt := range tests {
		if got := Mask(tt.width); got != tt.want {
			t.Errorf("Mask(%d) = %#x, want %#x", tt.width, got, tt.want)
		}
	}
}

func TestSignExtend(t *testing.T) {
	tests := []struct {
		name  string
		bits  uint64
		width int
		want  int64
	}{
		{"zero", 0, 1, 0},
		{"positive s8", 0x7F, 1, 127},
		{"negative s8", 0xFF, 1, -1},
		{"min s8", 0x80, 1, -128},
		{"negative s16", 0xFFFE, 2, -2},
		{"positive s16", 0x7FFF, 2, 32767},
		{"negative s32", 0xFFFFFFFF, 4, -1},
		{"min s32", 0x80000000, 4, -2147483648},
		{"negative s64", ^uint64(0), 8, -1},
		{"positive s64", 0x7FFFFFFFFFFFFFFF, 8, 9223372036854775807},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignExtend(tt.bits, tt.width); got != tt.want {
				t.Errorf("SignExtend(%#x, %d) = %d, want %d", tt.bits, tt.width, got, tt.want)
			}
		})
	}
}
