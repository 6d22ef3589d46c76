package backlogcli

import (
	"fmt"
	"os"

	"github.com/function61/casebacklog/pkg/backlog"
	"github.com/function61/casebacklog/pkg/caseline"
	"github.com/function61/gokit/os/osutil"
	"github.com/scylladb/termtables"
	"github.com/spf13/cobra"
)

func pendingEntrypoint() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "Print cases not yet finished, in enumeration order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(backlog.Pending(os.Stdout, AllCasesFile, DoneCasesFile))
		},
	}
}

func statsEntrypoint() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize backlog progress",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(printStats())
		},
	}
}

func markEntrypoint() *cobra.Command {
	return &cobra.Command{
		Use:   "mark [case]...",
		Short: "Record cases as finished",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(caseline.Append(DoneCasesFile, args))
		},
	}
}

func printStats() error {
	stats, err := backlog.ComputeStats(AllCasesFile, DoneCasesFile)
	if err != nil {
		return err
	}

	view := termtables.CreateTable()
	view.AddHeaders("Metric", "Count")
	view.AddRow("Total cases", stats.TotalCases)
	view.AddRow("Done", stats.DoneCases)
	view.AddRow("Pending", stats.PendingCases)
	view.AddRow("Done but not enumerated", stats.UnknownDone)

	fmt.Println(view.Render())

	return nil
}
