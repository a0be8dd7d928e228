package config

import "testing"

func TestDefaultValues(t *testing.T) {
	c := Default()
	if c.Depth != defaultDepth {
		t.Errorf("Depth = %d, want %d", c.Depth, defaultDepth)
	}
	if c.Delay != defaultDelay {
		t.Errorf("Delay = %v, want %v", c.Delay, defaultDelay)
	}
	if c.ArchiveRoot == "" {
		t.Error("ArchiveRoot should never be empty")
	}
	if c.Set(UseTLS) || c.Set(AllowXDomain) || c.Set(DebugLogging) {
		t.Error("all flags should default to false")
	}
}

func TestSetFlagRoundTrip(t *testing.T) {
	c := Default()
	c.SetFlag(AllowXDomain, true)
	if !c.Set(AllowXDomain) {
		t.Error("AllowXDomain should be true after SetFlag(true)")
	}
	c.SetFlag(AllowXDomain, false)
	if c.Set(AllowXDomain) {
		t.Error("AllowXDomain should be false after SetFlag(false)")
	}
}

func TestSetFlagOnZeroValueConfig(t *testing.T) {
	var c Config
	c.SetFlag(UseTLS, true)
	if !c.Set(UseTLS) {
		t.Error("SetFlag should lazily initialize the flags map on a zero-value Config")
	}
}
