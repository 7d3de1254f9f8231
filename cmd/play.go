package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/capitalz/internal/config"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz right away",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := appRequest{startQuiz: true}

		if v, _ := cmd.Flags().GetString("type"); v != "" {
			qt, err := config.ParseQuizType(v)
			if err != nil {
				return err
			}
			req.quizType = qt
		}
		req.category, _ = cmd.Flags().GetString("continent")
		req.questions, _ = cmd.Flags().GetInt("count")

		return runApp(cmd, req)
	},
}

func init() {
	playCmd.Flags().String("type", "", "Quiz type: capitals, states, flags or custom")
	playCmd.Flags().String("continent", "", "Only ask about one continent (or region, for states)")
	playCmd.Flags().Int("count", 0, "Number of questions (default from CAPITALZ_QUESTIONS)")
}
