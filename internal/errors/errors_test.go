package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(fmt.Errorf("boom")); got != "Error: boom" {
		t.Errorf("got %q", got)
	}
	if got := Format(nil); got != "" {
		t.Errorf("nil error must format empty, got %q", got)
	}
}

func TestFormatf(t *testing.T) {
	if got := Formatf("bad %s: %d", "port", 70000); got != "Error: bad port: 70000" {
		t.Errorf("got %q", got)
	}
}
