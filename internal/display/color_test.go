package display

import "testing"

func TestApplyStyleNeverColorMode(t *testing.T) {
	th := Theme{Color: ColorModeNever}
	got := applyStyle(th, "text", ansiBold)
	if got != "text" {
		t.Errorf("applyStyle with ColorModeNever = %q, want unchanged", got)
	}
}

func TestApplyStyleAlwaysColorMode(t *testing.T) {
	th := Theme{Color: ColorModeAlways}
	got := applyStyle(th, "text", ansiBold)
	want := ansiBold.Open + "text" + ansiBold.Close
	if got != want {
		t.Errorf("applyStyle with ColorModeAlways = %q, want %q", got, want)
	}
}

func TestApplyStyleEmptyStringPassesThrough(t *testing.T) {
	th := Theme{Color: ColorModeAlways}
	if got := applyStyle(th, "", ansiBold); got != "" {
		t.Errorf("applyStyle(\"\") = %q, want empty", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("short", 80); got != "short" {
		t.Errorf("truncateToWidth should leave short strings unchanged, got %q", got)
	}
	got := truncateToWidth("a very long status line that exceeds the width", 10)
	if len(got) != 10 {
		t.Errorf("truncateToWidth length = %d, want 10", len(got))
	}
}
