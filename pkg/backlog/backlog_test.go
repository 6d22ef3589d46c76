package backlog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/function61/gokit/testing/assert"
)

func TestPending(t *testing.T) {
	assert.EqualString(t, runPending(t, "A\nB\n", "A\nC\nB\nD\n"), "C\nD\n")
}

func TestPendingDuplicates(t *testing.T) {
	// the done set is static for the whole pass, so every occurrence of a done
	// case is suppressed, while not-done duplicates print once per occurrence
	assert.EqualString(t, runPending(t, "X\n", "X\nX\nY\n"), "Y\n")
	assert.EqualString(t, runPending(t, "", "Y\nY\n"), "Y\nY\n")
}

func TestPendingEmptyAllCases(t *testing.T) {
	assert.EqualString(t, runPending(t, "A\n", ""), "")
}

func TestPendingEmptyDoneCases(t *testing.T) {
	assert.EqualString(t, runPending(t, "", "A\nB\n"), "A\nB\n")
}

func TestPendingPreservesOrder(t *testing.T) {
	assert.EqualString(t, runPending(t, "m\n", "z\nm\na\nq\n"), "z\na\nq\n")
}

func TestPendingTrimsTrailingWhitespace(t *testing.T) {
	assert.EqualString(t, runPending(t, "A \n", "A\t\nB\n"), "B\n")
}

func TestPendingIsIdempotent(t *testing.T) {
	first := runPending(t, "A\nB\n", "A\nC\nB\nD\n")
	second := runPending(t, "A\nB\n", "A\nC\nB\nD\n")

	assert.EqualString(t, first, second)
}

func TestPendingMissingInput(t *testing.T) {
	output := &bytes.Buffer{}

	err := Pending(
		output,
		filepath.Join(t.TempDir(), "does-not-exist.txt"),
		filepath.Join(t.TempDir(), "does-not-exist.txt"))
	assert.Assert(t, err != nil)
	assert.EqualString(t, output.String(), "")
}

func TestComputeStats(t *testing.T) {
	allCases, doneCases := writeInputs(t, "A\nstale\n", "A\nB\nC\n")

	stats, err := ComputeStats(allCases, doneCases)
	assert.Ok(t, err)

	assert.Assert(t, stats.TotalCases == 3)
	assert.Assert(t, stats.DoneCases == 2)
	assert.Assert(t, stats.PendingCases == 2)
	assert.Assert(t, stats.UnknownDone == 1)
}

func TestComputeStatsEmptyInputs(t *testing.T) {
	allCases, doneCases := writeInputs(t, "", "")

	stats, err := ComputeStats(allCases, doneCases)
	assert.Ok(t, err)

	assert.Assert(t, stats.TotalCases == 0)
	assert.Assert(t, stats.DoneCases == 0)
	assert.Assert(t, stats.PendingCases == 0)
	assert.Assert(t, stats.UnknownDone == 0)
}

func runPending(t *testing.T, doneContent string, allContent string) string {
	allCases, doneCases := writeInputs(t, doneContent, allContent)

	output := &bytes.Buffer{}
	assert.Ok(t, Pending(output, allCases, doneCases))

	return output.String()
}

func writeInputs(t *testing.T, doneContent string, allContent string) (string, string) {
	tempDir := t.TempDir()

	allCases := filepath.Join(tempDir, "c4_cases.txt")
	doneCases := filepath.Join(tempDir, "output.txt")

	assert.Ok(t, os.WriteFile(allCases, []byte(allContent), 0600))
	assert.Ok(t, os.WriteFile(doneCases, []byte(doneContent), 0600))

	return allCases, doneCases
}
