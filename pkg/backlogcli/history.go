package backlogcli

import (
	"fmt"
	"time"

	"github.com/function61/casebacklog/pkg/backlog"
	"github.com/function61/casebacklog/pkg/progressdb"
	"github.com/function61/gokit/os/osutil"
	"github.com/scylladb/termtables"
	"github.com/spf13/cobra"
)

func historyEntrypoint() *cobra.Command {
	parentCmd := &cobra.Command{
		Use:   "history",
		Short: "Progress snapshots over time",
	}

	parentCmd.AddCommand(&cobra.Command{
		Use:   "record",
		Short: "Store a snapshot of current progress",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(historyRecord())
		},
	})

	parentCmd.AddCommand(&cobra.Command{
		Use:   "ls",
		Short: "List stored progress snapshots, oldest first",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			osutil.ExitIfError(historyList())
		},
	})

	return parentCmd
}

func historyRecord() error {
	stats, err := backlog.ComputeStats(AllCasesFile, DoneCasesFile)
	if err != nil {
		return err
	}

	db, err := progressdb.Open(progressdb.Filename)
	if err != nil {
		return err
	}
	defer db.Close()

	return progressdb.Record(db, stats, time.Now())
}

func historyList() error {
	db, err := progressdb.Open(progressdb.Filename)
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := progressdb.List(db)
	if err != nil {
		return err
	}

	view := termtables.CreateTable()
	view.AddHeaders("Timestamp", "Total", "Done", "Pending", "Unknown done")

	for _, snapshot := range snapshots {
		view.AddRow(
			snapshot.Timestamp.Format(time.RFC3339),
			snapshot.TotalCases,
			snapshot.DoneCases,
			snapshot.PendingCases,
			snapshot.UnknownDone,
		)
	}

	fmt.Println(view.Render())

	return nil
}
