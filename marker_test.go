package gopagebar

import "testing"

func Test_Marker(t *testing.T) {
	tests := []struct {
		name     string
		in       Marker
		ellipsis bool
		page     int
		str      string
	}{
		{"page", Marker(7), false, 7, "7"},
		{"first page", Marker(1), false, 1, "1"},
		{"ellipsis", Ellipsis, true, 0, "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.IsEllipsis(); got != tt.ellipsis {
				t.Errorf("%s: IsEllipsis=%v want %v", tt.name, got, tt.ellipsis)
			}
			if got := tt.in.Page(); got != tt.page {
				t.Errorf("%s: Page=%d want %d", tt.name, got, tt.page)
			}
			if got := tt.in.String(); got != tt.str {
				t.Errorf("%s: String=%q want %q", tt.name, got, tt.str)
			}
		})
	}
}

func Test_pageMarkers(t *testing.T) {
	if got := pageMarkers(1, 0); len(got) != 0 || got == nil {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
	if got := pageMarkers(4, 3); len(got) != 3 || got[0] != 4 || got[2] != 6 {
		t.Errorf("unexpected markers %v", got)
	}
}
