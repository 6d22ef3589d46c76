package backlogcli

import (
	"github.com/function61/casebacklog/pkg/backlogserver"
	"github.com/function61/gokit/log/logex"
	"github.com/function61/gokit/os/osutil"
	"github.com/spf13/cobra"
)

func serveEntrypoint() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the backlog over HTTP",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			rootLogger := logex.StandardLogger()

			osutil.ExitIfError(backlogserver.Serve(
				osutil.CancelOnInterruptOrTerminate(rootLogger),
				AllCasesFile,
				DoneCasesFile,
				rootLogger))
		},
	}
}
