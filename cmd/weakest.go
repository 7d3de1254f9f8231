package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/config"
	"github.com/abhisek/capitalz/internal/stats"
)

var weakestCmd = &cobra.Command{
	Use:   "weakest",
	Short: "List the items you miss most often",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		qt := e.cfg.QuizType
		if v, _ := cmd.Flags().GetString("type"); v != "" {
			if qt, err = config.ParseQuizType(v); err != nil {
				return err
			}
		}
		limit, _ := cmd.Flags().GetInt("limit")

		writeWeakest(cmd.OutOrStdout(), e.stats, qt, limit)
		return nil
	},
}

func init() {
	weakestCmd.Flags().String("type", "", "Quiz type: capitals, states, flags or custom")
	weakestCmd.Flags().Int("limit", 10, "Maximum number of items to list (0 for all)")
}

func writeWeakest(w io.Writer, st *stats.Store, qt catalog.QuizType, limit int) {
	items := st.Weakest(qt, limit)
	if len(items) == 0 {
		fmt.Fprintf(w, "No answers recorded for %s yet.\n", qt)
		return
	}
	qs := st.Stats(qt)

	fmt.Fprintf(w, "%-28s  %-24s  %5s  %8s\n", "Item", "Answer", "Asked", "Accuracy")
	fmt.Fprintln(w, strings.Repeat("─", 71))
	for _, it := range items {
		is := qs.ItemStats[it.ID]
		fmt.Fprintf(w, "%-28s  %-24s  %5d  %8s\n",
			truncate(it.ID, 28), truncate(it.Answer, 24), is.TimesAsked, percent(is.Accuracy()))
	}
	fmt.Fprintf(w, "\n%d items\n", len(items))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
