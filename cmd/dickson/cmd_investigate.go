package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dickson/dataset"
	"github.com/katalvlaran/dickson/investigate"
)

var investigatePrime int64

// investigateCmd groups the exploratory subreports.
var investigateCmd = &cobra.Command{
	Use:   "investigate",
	Short: "Exploratory queries: coverage, permutation indices, parameter a",
}

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Which cardinalities in {1..p-1} occur per prime, and which are missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := buildConfiguredDataset(cmd)
		if err != nil {
			return err
		}
		for _, c := range investigate.CardinalityCoverage(ds) {
			fmt.Fprintf(cmd.OutOrStdout(),
				"p=%d coverage=%.1f%% missing=%v permutations=%t\n",
				c.P, c.CoveragePct, c.Missing, c.HasPermutation)
		}

		return nil
	},
}

var permutationCmd = &cobra.Command{
	Use:   "permutation",
	Short: "Observed permutation indices versus the gcd(n, p²-1)=1 prediction",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := buildConfiguredDataset(cmd)
		if err != nil {
			return err
		}
		for _, r := range investigate.PermutationCriterion(ds) {
			fmt.Fprintf(cmd.OutOrStdout(),
				"p=%d observed=%d predicted=%d criterion_holds=%t\n",
				r.P, len(r.Indices), len(r.GCDPredicted), r.CriterionHolds)
		}

		return nil
	},
}

var parameterCmd = &cobra.Command{
	Use:   "parameter-a",
	Short: "Sweep a over [0, p) for one prime and summarize each slice",
	RunE: func(cmd *cobra.Command, args []string) error {
		byA, err := investigate.ParameterVariation(cmd.Context(), investigatePrime)
		if err != nil {
			return err
		}
		for _, s := range byA {
			fmt.Fprintf(cmd.OutOrStdout(),
				"p=%d a=%d card2=%d permutations=%d cardinalities=%v\n",
				s.P, s.A, s.Card2Count, s.PermutationCount, s.Cardinalities)
		}

		return nil
	},
}

// buildConfiguredDataset is shared by the dataset-backed subreports.
func buildConfiguredDataset(cmd *cobra.Command) (*dataset.Dataset, error) {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Build(cmd.Context(), cfg.datasetOptions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("dataset built", zap.Int("records", len(ds.Records())))

	return ds, nil
}

func init() {
	parameterCmd.Flags().Int64VarP(&investigatePrime, "prime", "p", 13,
		"prime to sweep the parameter over")
	investigateCmd.AddCommand(coverageCmd, permutationCmd, parameterCmd)
	rootCmd.AddCommand(investigateCmd)
}
