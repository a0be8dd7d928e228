package urlutil

import "testing"

func TestParseHostPage(t *testing.T) {
	cases := []struct {
		url  string
		host string
		page string
	}{
		{"http://t.test/a/b", "t.test", "/a/b"},
		{"http://t.test/", "t.test", "/"},
		{"http://t.test", "t.test", "/"},
		{"https://t.test/a/", "t.test", "/a"},
	}
	for _, c := range cases {
		if got := ParseHost(c.url); got != c.host {
			t.Errorf("ParseHost(%q) = %q, want %q", c.url, got, c.host)
		}
		if got := ParsePage(c.url); got != c.page {
			t.Errorf("ParsePage(%q) = %q, want %q", c.url, got, c.page)
		}
	}
}

func TestMakeFullURL(t *testing.T) {
	ctx := HTTPContext{Scheme: "http", Host: "t.test", Page: "/dir/page.html"}

	cases := map[string]string{
		"https://other.test/x": "https://other.test/x",
		"//cdn.test/y":         "http://cdn.test/y",
		"/abs":                 "http://t.test/abs",
		"rel":                  "http://t.test/dir/rel",
	}
	for in, want := range cases {
		if got := MakeFullURL(ctx, in); got != want {
			t.Errorf("MakeFullURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMakeLocalURLDeterministic(t *testing.T) {
	root := "/archive"
	u := "http://t.test/a/b?x=1"

	first := MakeLocalURL(root, u)
	second := MakeLocalURL(root, u)
	if first != second {
		t.Fatalf("MakeLocalURL not pure: %q != %q", first, second)
	}
	want := "/archive/t.test/a/b_x=1.html"
	if first != want {
		t.Fatalf("MakeLocalURL(%q) = %q, want %q", u, first, want)
	}
}

func TestIsXDomain(t *testing.T) {
	ctx := HTTPContext{Scheme: "http", Host: "t.test"}
	if IsXDomain(ctx, "http://t.test/a") {
		t.Error("same host flagged as cross-domain")
	}
	if !IsXDomain(ctx, "http://other.test/a") {
		t.Error("different host not flagged as cross-domain")
	}
}

func TestIsParseable(t *testing.T) {
	if !IsParseable("http://t.test/page") {
		t.Error("page should be parseable")
	}
	if IsParseable("http://t.test/image.png") {
		t.Error(".png should not be parseable")
	}
}
