package main

import (
	"fmt"
	"os"

	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/bankimport"
	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/budgetimport"
	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/cascade"
	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/exportcmd"
	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/livrets"
	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/objectifs"
	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/prevu"
	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/reset"
	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/root"
	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/saisie"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(budgetimport.Cmd)
	root.Cmd.AddCommand(bankimport.Cmd)
	root.Cmd.AddCommand(livrets.Cmd)
	root.Cmd.AddCommand(exportcmd.Cmd)
	root.Cmd.AddCommand(cascade.Cmd)
	root.Cmd.AddCommand(saisie.Cmd)
	root.Cmd.AddCommand(prevu.Cmd)
	root.Cmd.AddCommand(objectifs.Cmd)
	root.Cmd.AddCommand(reset.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
