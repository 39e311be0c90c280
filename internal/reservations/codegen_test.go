package reservations

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

var codePattern = regexp.MustCompile(`^BK-\d{8}-\d{6}$`)

func TestGenerateCodeFormat(t *testing.T) {
	fixed := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	gen := &codeGenerator{now: func() time.Time { return fixed }}

	code, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !codePattern.MatchString(code) {
		t.Fatalf("code %q does not match PREFIX-YYYYMMDD-NNNNNN", code)
	}
	if !strings.HasPrefix(code, "BK-20250314-") {
		t.Fatalf("expected date part 20250314, got %q", code)
	}
}

func TestGenerateCodeSuffixRange(t *testing.T) {
	gen := NewCodeGenerator()

	for i := 0; i < 200; i++ {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		parts := strings.Split(code, "-")
		if len(parts) != 3 {
			t.Fatalf("expected 3 segments, got %q", code)
		}
		suffix, err := strconv.Atoi(parts[2])
		if err != nil {
			t.Fatalf("suffix %q is not numeric: %v", parts[2], err)
		}
		if suffix < 100000 || suffix > 999999 {
			t.Fatalf("suffix %d outside [100000, 999999]", suffix)
		}
	}
}
