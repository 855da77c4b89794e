package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"talentmatch/internal/logger"
	"talentmatch/internal/matching"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var matchCmd = &cobra.Command{
	Use:   "match <job-id>",
	Short: "Score every candidate against one job and store the ranked results",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runMatch(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("owner", "o", "", "owner id of the job (uuid)")
	matchCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation before replacing stored matches")

	matchCmd.MarkFlagRequired("owner")
}

// runMatch is the interactive entry point for a batch run. A run deletes
// every stored match for the job before repopulating, so it asks first.
func runMatch(cmd *cobra.Command, jobIDArg string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	jobID, err := uuid.Parse(jobIDArg)
	if err != nil {
		logger.Fatal("parsing job id", zap.String("job_id", jobIDArg), zap.Error(err))
	}

	ownerID, err := uuid.Parse(cmd.Flag("owner").Value.String())
	if err != nil {
		logger.Fatal("parsing owner id", zap.Error(err))
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}
	if config == nil {
		logger.Fatal("config is required")
	}

	logger.Info("starting talentmatch batch run", zap.String("version", version), zap.String("job_id", jobID.String()))

	if cmd.Flag("yes").Value.String() == "false" {
		prompt := promptui.Select{
			Label: fmt.Sprintf("This replaces all stored matches for job %s. Proceed?", jobID),
			Items: []string{PromptYes, PromptNo},
		}

		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		if action != PromptYes {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	runner, st, err := buildRunner(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the match runner", zap.Error(err))
	}
	defer st.Close()

	summary, err := runner.RunBatch(ctx, jobID, ownerID)
	if err != nil {
		logger.Fatal("batch matching failed", zap.Error(err))
	}

	printSummary(summary)
}

func printSummary(summary *matching.BatchSummary) {
	bold := color.New(color.Bold)

	bold.Printf("\nJob %s: %d candidates, %d matches created\n\n", summary.JobID, summary.TotalCandidates, summary.MatchesCreated)

	for i, match := range summary.TopMatches {
		name := match.CandidateID.String()
		if match.Details != nil {
			fmt.Printf("%2d. %s  %s\n", i+1, scoreColor(match.Score).Sprintf("%3d", match.Score), name)
			fmt.Printf("    %s\n", match.Details.Summary)
		} else {
			fmt.Printf("%2d. %s  %s\n", i+1, scoreColor(match.Score).Sprintf("%3d", match.Score), name)
		}
	}

	if len(summary.Skipped) > 0 {
		color.Yellow("\nSkipped %d candidate(s):", len(summary.Skipped))
		for _, skipped := range summary.Skipped {
			fmt.Printf("  - %s: %s\n", skipped.CandidateID, skipped.Reason)
		}
	}
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 75:
		return color.New(color.FgGreen)
	case score >= 50:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
