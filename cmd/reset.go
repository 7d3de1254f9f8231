package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/capitalz/internal/config"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, _ := cmd.Flags().GetString("type")
		all, _ := cmd.Flags().GetBool("all")
		switch {
		case typ != "" && all:
			return errors.New("use --type or --all, not both")
		case typ == "" && !all:
			return errors.New("specify --type or --all")
		}

		e, err := openEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		if all {
			e.stats.ResetAll()
			fmt.Fprintln(cmd.OutOrStdout(), "All statistics reset.")
			return nil
		}

		qt, err := config.ParseQuizType(typ)
		if err != nil {
			return err
		}
		e.stats.Reset(qt)
		fmt.Fprintf(cmd.OutOrStdout(), "Statistics for %s reset.\n", qt)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("type", "", "Quiz type to reset: capitals, states, flags or custom")
	resetCmd.Flags().Bool("all", false, "Reset every quiz type")
}
