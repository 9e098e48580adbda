package cmd

import (
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the ifund CLI.
// A main package registers each of them and executes the user-selected one.
var Commands = []subcommands.Command{
	&planCmd{},
	&weightsCmd{},
	&fetchCmd{},
	&showCmd{},
	&topicCmd{},
}
