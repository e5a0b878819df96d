package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/GuilhermeDReis/finch/pkg/finance"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func testSchedule() []finance.Installment {
	return []finance.Installment{
		{Number: 1, Payment: 1100.00, Interest: 100.00, Principal: 1000.00, RemainingBalance: 0.00},
	}
}

func TestPrettyFormat(t *testing.T) {
	output := captureStdout(t, func() {
		PrettyFormat(testSchedule())
	})

	if !strings.Contains(output, "# | Payment") {
		t.Errorf("PrettyFormat missing table header")
	}
	if !strings.Contains(output, "$1,100.00") {
		t.Errorf("PrettyFormat missing grouped payment value")
	}
	if !strings.Contains(output, "$0.00") {
		t.Errorf("PrettyFormat missing remaining balance")
	}
}

func TestCsvFormat(t *testing.T) {
	output := captureStdout(t, func() {
		CsvFormat(testSchedule())
	})

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		t.Fatalf("CsvFormat produced %d lines, expected 2", len(lines))
	}
	if lines[0] != `"installment","payment","interest","principal","remaining balance"` {
		t.Errorf("unexpected CSV header: %s", lines[0])
	}
	if lines[1] != `"1","1100.00","100.00","1000.00","0.00"` {
		t.Errorf("unexpected CSV row: %s", lines[1])
	}
}
