package main

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/timewinder-dev/seeker/starmodel"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect MODELFILE",
	Short: "List a model's functions and expand its start state once",
	Args:  cobra.ExactArgs(1),
	Run:   inspectCommand,
}

func inspectCommand(cmd *cobra.Command, args []string) {
	mod, err := starmodel.Load(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't load model")
	}
	fmt.Println(color.Cyan.Sprint("Functions:"), strings.Join(mod.Functions(), ", "))

	p, err := mod.Problem(starmodel.DefaultProblemFuncs())
	if err != nil {
		// Not a search problem; games have no single successor function
		// worth expanding here.
		log.Debug().Err(err).Msg("model is not a search problem")
		return
	}
	start := p.StartState()
	fmt.Println(color.Cyan.Sprint("Start:"), p.Describe(start), color.Gray.Sprint(start))
	succs, err := p.Successors(start)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't expand start state")
	}
	for _, s := range succs {
		fmt.Printf("  %-10s cost %-6g -> %s\n", s.Action, s.Cost, p.Describe(s.State))
	}
}
