package backlogcli

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/function61/casebacklog/pkg/backlog"
	"github.com/function61/gokit/log/logex"
	"github.com/function61/gokit/os/osutil"
	"github.com/spf13/cobra"
)

func watchEntrypoint() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print pending cases now and again after each input file change",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			rootLogger := logex.StandardLogger()

			osutil.ExitIfError(watch(
				osutil.CancelOnInterruptOrTerminate(rootLogger),
				os.Stdout,
				rootLogger))
		},
	}
}

func watch(ctx context.Context, output io.Writer, logger *log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// the working directory is watched (instead of the two files) so
	// rename-over rewrites keep being observed
	if err := watcher.Add("."); err != nil {
		return err
	}

	printListing := func() error {
		return backlog.Pending(output, AllCasesFile, DoneCasesFile)
	}

	if err := printListing(); err != nil {
		return err
	}

	// coalesces bursts of writes into one refresh
	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			name := filepath.Base(event.Name)
			if name != AllCasesFile && name != DoneCasesFile {
				continue
			}

			debounce = time.After(500 * time.Millisecond)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Printf("watch: %v", err)
		case <-debounce:
			debounce = nil

			logger.Println("input changed; recomputing")

			if err := printListing(); err != nil {
				return err
			}
		}
	}
}
