package icer

import (
	"fmt"
	"strings"
)

// Filter selects the wavelet kernel used for the inverse transform. It is
// not recorded in the stream and must match the kernel used at encode time.
type Filter int

const (
	FilterA Filter = iota
	FilterB
	FilterC
	FilterD
	FilterE
	FilterF
	FilterQ
)

var filterNames = [...]string{"A", "B", "C", "D", "E", "F", "Q"}

func (f Filter) String() string {
	if f.Valid() {
		return filterNames[f]
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// Valid reports whether f is one of the seven kernels the codec knows.
func (f Filter) Valid() bool {
	return f >= FilterA && f <= FilterQ
}

// ParseFilter maps a kernel letter ("A".."F", "Q") to a Filter.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range filterNames {
		if s == name {
			return Filter(i), nil
		}
	}
	return 0, fmt.Errorf("icer: unknown filter %q", s)
}
