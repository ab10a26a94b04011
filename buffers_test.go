package icer

import (
	"errors"
	"math"
	"testing"
)

func TestNewChannelBuffers(t *testing.T) {
	for _, n := range []int{1, 3} {
		b, err := newChannelBuffers(7, 5, n, 0)
		if err != nil {
			t.Fatalf("newChannelBuffers(%d planes): %v", n, err)
		}
		if len(b.planes) != n {
			t.Errorf("planes = %d, want %d", len(b.planes), n)
		}
		if b.capacity() != 35 {
			t.Errorf("capacity = %d, want 35", b.capacity())
		}
		for i, p := range b.planes {
			if len(p) != 35 || cap(p) != 35 {
				t.Errorf("plane %d len/cap = %d/%d, want 35", i, len(p), cap(p))
			}
			for _, s := range p {
				if s != 0 {
					t.Fatalf("plane %d not zeroed", i)
				}
			}
		}
	}
}

func TestNewChannelBuffers_Errors(t *testing.T) {
	_, err := newChannelBuffers(math.MaxInt/2+1, 3, 3, 0)
	wantStatusError(t, err, StageAllocate, StatusIntegerOverflow)

	_, err = newChannelBuffers(0, 3, 1, 0)
	wantStatusError(t, err, StageAllocate, StatusInvalidInput)

	_, err = newChannelBuffers(64, 64, 3, 4095)
	if !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("err = %v, want ErrImageTooLarge", err)
	}
}

func TestChannelBuffersView(t *testing.T) {
	b, err := newChannelBuffers(4, 4, 3, 0)
	if err != nil {
		t.Fatal(err)
	}

	v, err := b.view(3, 2)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	for i, p := range v {
		if len(p) != 6 || cap(p) != 6 {
			t.Errorf("view plane %d len/cap = %d/%d, want 6", i, len(p), cap(p))
		}
	}

	if v, err := b.view(0, 0); err != nil || len(v[0]) != 0 {
		t.Errorf("empty view = %v, %v", v, err)
	}

	for _, d := range [][2]int{{5, 1}, {1, 5}, {-1, 2}} {
		_, err := b.view(d[0], d[1])
		wantStatusError(t, err, StageDecode, StatusOutputBufTooSmall)
	}
}
