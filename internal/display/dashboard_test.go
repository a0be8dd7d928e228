package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewDiscardDiscardsOutput(t *testing.T) {
	d := NewDiscard()
	d.UpdateCurrentURL("http://t.test/")
	d.UpdateStatusCode(200)
	d.PutErrorMsg("boom")
	d.ClearErrorMsg()
	// NewDiscard writes to io.Discard; nothing to assert beyond "does not panic".
}

func TestTerminalWritesLabeledSlots(t *testing.T) {
	var buf bytes.Buffer
	term := &Terminal{out: &buf, theme: MonochromeTheme()}

	term.UpdateCurrentURL("http://t.test/a")
	term.UpdateStatusCode(404)

	out := buf.String()
	if !strings.Contains(out, "url:") {
		t.Errorf("output missing url label: %q", out)
	}
	if !strings.Contains(out, "status:") {
		t.Errorf("output missing status label: %q", out)
	}
	if !strings.Contains(out, "404") {
		t.Errorf("output missing status value: %q", out)
	}
}

func TestNilTerminalReceiverIsSafe(t *testing.T) {
	var term *Terminal
	term.repaint(slotURL, "url", "http://t.test/")
}

func TestUpdateGenerationCountAlternatesSlots(t *testing.T) {
	var buf bytes.Buffer
	term := &Terminal{out: &buf, theme: MonochromeTheme()}

	term.UpdateGenerationCount(0, 5)
	term.UpdateGenerationCount(1, 9)

	out := buf.String()
	if !strings.Contains(out, "cache0:") || !strings.Contains(out, "cache1:") {
		t.Errorf("expected both generation labels present, got %q", out)
	}
}
