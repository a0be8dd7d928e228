package log

import "testing"

func TestNewReturnsUsableLogger(t *testing.T) {
	l := New(true)
	l.Debugf("debug %s", "line")
	l.Infof("info %s", "line")
	l.Warnf("warn %s", "line")
	l.Errorf("error %s", "line")
}

func TestWithFieldReturnsIndependentLogger(t *testing.T) {
	base := New(false)
	tagged := base.WithField("url", "http://t.test/")
	if tagged == nil {
		t.Fatal("WithField returned nil")
	}
	tagged.Infof("fetched")
}
