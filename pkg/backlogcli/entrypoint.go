// Command line interface for the proof-case backlog tool.
package backlogcli

import (
	"fmt"

	"github.com/function61/gokit/app/dynversion"
	"github.com/spf13/cobra"
)

// The case enumerator writes c4_cases.txt and the proof search appends each
// finished case to output.txt. Both names are fixed and resolved against the
// working directory, so there is nothing to configure.
const (
	AllCasesFile  = "c4_cases.txt"
	DoneCasesFile = "output.txt"
)

func Entrypoint() *cobra.Command {
	app := &cobra.Command{
		Use:   "casebacklog",
		Short: "Reports which enumerated proof cases are still pending",
	}

	app.AddCommand(pendingEntrypoint())
	app.AddCommand(statsEntrypoint())
	app.AddCommand(markEntrypoint())
	app.AddCommand(watchEntrypoint())
	app.AddCommand(serveEntrypoint())
	app.AddCommand(historyEntrypoint())

	app.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(dynversion.Version)
		},
	})

	return app
}
