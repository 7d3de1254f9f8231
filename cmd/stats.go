package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/config"
	"github.com/abhisek/capitalz/internal/stats"
)

const recentSessions = 5

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		types := e.catalogs.Types()
		if v, _ := cmd.Flags().GetString("type"); v != "" {
			qt, err := config.ParseQuizType(v)
			if err != nil {
				return err
			}
			if !e.catalogs.Has(qt) {
				return fmt.Errorf("%w: %s", catalog.ErrUnknownQuizType, qt)
			}
			types = []catalog.QuizType{qt}
		}

		out := cmd.OutOrStdout()
		for i, qt := range types {
			if i > 0 {
				fmt.Fprintln(out)
			}
			writeStats(out, e.stats, e.catalogs, qt)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("type", "", "Only show one quiz type: capitals, states, flags or custom")
}

// writeStats prints the overview, category breakdown and recent sessions
// of qt.
func writeStats(w io.Writer, st *stats.Store, reg *catalog.Registry, qt catalog.QuizType) {
	ov := st.Overview(qt)
	qs := st.Stats(qt)

	fmt.Fprintln(w, qt)
	fmt.Fprintln(w, strings.Repeat("─", len(string(qt))))
	if ov.Answered == 0 {
		fmt.Fprintln(w, "Not played yet.")
		return
	}

	total := len(reg.Items(qt))
	fmt.Fprintf(w, "%-12s %d (%d correct, %s)\n", "Answered", ov.Answered, ov.Correct, percent(ov.Accuracy))
	fmt.Fprintf(w, "%-12s %d (best %d)\n", "Streak", ov.CurrentStreak, ov.LongestStreak)
	fmt.Fprintf(w, "%-12s %d\n", "Sessions", ov.Sessions)
	fmt.Fprintf(w, "%-12s %d of %d\n", "Items seen", ov.ItemsSeen, total)

	label := "Category"
	if cat, err := reg.Get(qt); err == nil && cat.Definition().CategoryLabel != "" {
		label = cat.Definition().CategoryLabel
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-16s  %8s  %8s\n", label, "Answered", "Accuracy")
	for _, name := range reg.Categories(qt) {
		cs, ok := qs.CategoryStats[name]
		if !ok || cs.QuestionsAnswered == 0 {
			fmt.Fprintf(w, "%-16s  %8s  %8s\n", name, "-", "-")
			continue
		}
		fmt.Fprintf(w, "%-16s  %8d  %8s\n", name, cs.QuestionsAnswered, percent(cs.Accuracy()))
	}

	if len(qs.History) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent sessions")
	for i := len(qs.History) - 1; i >= 0 && i >= len(qs.History)-recentSessions; i-- {
		h := qs.History[i]
		filter := "All"
		if h.CategoryFilter != nil {
			filter = *h.CategoryFilter
		}
		fmt.Fprintf(w, "  %s  %2d/%-2d  %4s  %s  %s\n",
			h.Timestamp.Local().Format("2006-01-02 15:04"),
			h.CorrectCount, h.QuestionsCount, percent(h.Accuracy()),
			clock(h.Duration()), filter)
	}
}

func percent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// clock formats d as m:ss.
func clock(d time.Duration) string {
	s := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
