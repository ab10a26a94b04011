package icer

import "testing"

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"A", FilterA, false},
		{"b", FilterB, false},
		{" F ", FilterF, false},
		{"Q", FilterQ, false},
		{"G", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFilter(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFilter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFilterValues(t *testing.T) {
	// Wire values are passed straight to libicer's filter enum.
	want := map[Filter]int{FilterA: 0, FilterB: 1, FilterC: 2, FilterD: 3, FilterE: 4, FilterF: 5, FilterQ: 6}
	for f, v := range want {
		if int(f) != v {
			t.Errorf("%v = %d, want %d", f, int(f), v)
		}
		if !f.Valid() {
			t.Errorf("%v not valid", f)
		}
		if back, err := ParseFilter(f.String()); err != nil || back != f {
			t.Errorf("ParseFilter(%v.String()) = %v, %v", f, back, err)
		}
	}
	if Filter(-1).Valid() || Filter(7).Valid() {
		t.Error("out-of-range filters reported valid")
	}
	if got := Filter(7).String(); got != "Filter(7)" {
		t.Errorf("Filter(7).String() = %q", got)
	}
}
