// Computes which enumerated proof cases are still pending: present in the
// all-cases list but not yet recorded as done.
package backlog

import (
	"fmt"
	"io"

	"github.com/function61/casebacklog/pkg/caseline"
	"github.com/function61/casebacklog/pkg/caseset"
)

// Pending streams the all-cases file and writes to output each case not found
// in the done-cases file, one per line, preserving the all-cases file's order.
// The done set is static for the whole pass: duplicates of a done case are
// suppressed at every occurrence, duplicates of a pending case print each time.
func Pending(output io.Writer, allCasesPath string, doneCasesPath string) error {
	doneCases, err := loadDoneSet(doneCasesPath)
	if err != nil {
		return err
	}

	return caseline.ForEach(allCasesPath, func(caseId string) error {
		if doneCases.Has(caseId) {
			return nil
		}

		_, err := fmt.Fprintln(output, caseId)
		return err
	})
}

type Stats struct {
	TotalCases   int `json:"total_cases"`
	DoneCases    int `json:"done_cases"`    // unique cases recorded as done
	PendingCases int `json:"pending_cases"` // counts duplicate pending entries each time, like Pending() prints them
	UnknownDone  int `json:"unknown_done"`  // done-file lines that the all-cases list doesn't mention
}

func ComputeStats(allCasesPath string, doneCasesPath string) (*Stats, error) {
	doneLines, err := caseline.ReadAll(doneCasesPath)
	if err != nil {
		return nil, err
	}

	doneCases := caseset.New(doneLines...)

	stats := &Stats{DoneCases: doneCases.Len()}

	allCases := caseset.New()

	if err := caseline.ForEach(allCasesPath, func(caseId string) error {
		stats.TotalCases++
		allCases.Add(caseId)

		if !doneCases.Has(caseId) {
			stats.PendingCases++
		}

		return nil
	}); err != nil {
		return nil, err
	}

	for _, caseId := range doneLines {
		if !allCases.Has(caseId) {
			stats.UnknownDone++
		}
	}

	return stats, nil
}

func loadDoneSet(doneCasesPath string) (caseset.Set, error) {
	doneLines, err := caseline.ReadAll(doneCasesPath)
	if err != nil {
		return nil, err
	}

	return caseset.New(doneLines...), nil
}
