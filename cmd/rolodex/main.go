package main

import (
	"os"

	"github.com/grovetools/rolodex/cli"
	"github.com/grovetools/rolodex/cmd"
)

func main() {
	root := cmd.NewRootCmd()
	failed, err := root.ExecuteC()
	if err == nil {
		return
	}

	if failed == nil {
		failed = root
	}
	if cli.IsUsageError(err) {
		cli.PrintError(failed, err)
	} else {
		verbose, _ := root.PersistentFlags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
	}
	os.Exit(1)
}
