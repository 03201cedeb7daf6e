package pkg

import (
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "lamb"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestDescription(t *testing.T) {
	if Description == "" {
		t.Error("Expected Description to be non-empty")
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from VERSION file, so it should not be empty.
	if strings.TrimSpace(Version) == "" {
		t.Error("Expected embedded Version to be non-empty")
	}
}
