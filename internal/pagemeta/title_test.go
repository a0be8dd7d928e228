package pagemeta

import "testing"

func TestExtractTitle(t *testing.T) {
	cases := map[string]string{
		"<html><head><title>Hello World</title></head></html>": "Hello World",
		"<html><head></head><body>no title</body></html>":      "",
		"<title>  padded  </title>":                             "padded",
	}
	for body, want := range cases {
		if got := ExtractTitle([]byte(body)); got != want {
			t.Errorf("ExtractTitle(%q) = %q, want %q", body, got, want)
		}
	}
}
