package main

import (
	"github.com/function61/casebacklog/pkg/backlogcli"
	"github.com/function61/gokit/os/osutil"
)

func main() {
	osutil.ExitIfError(backlogcli.Entrypoint().Execute())
}
