// Package cmd provides command-line interface commands for DeepTrace.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"deeptrace/storage"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// CLI output formatters
var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
)

// Global flags for data commands
var (
	dataDir    string
	outputJSON bool
	noColor    bool
	quiet      bool
)

// NewDataCmd creates the root data command with all subcommands.
func NewDataCmd() *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Inspect the on-disk record collections",
		Long: `Inspect the on-disk record collections served by the API.

The data directory holds one file per collection (campaigns, posts, accounts,
threat_scores, reports) as .json or .yaml. These commands check the files
before the server loads them.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	dataCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./data", "Data directory path")
	dataCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output in JSON format")
	dataCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	dataCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress non-essential output")

	dataCmd.AddCommand(newValidateCmd())
	dataCmd.AddCommand(newSummaryCmd())

	return dataCmd
}

// collectionReport is the validation outcome for one collection file.
type collectionReport struct {
	Collection string   `json:"collection"`
	Present    bool     `json:"present"`
	Records    int      `json:"records"`
	Errors     []string `json:"errors,omitempty"`
}

// validateResult is the full outcome of the validate command.
type validateResult struct {
	DataDir     string             `json:"data_dir"`
	Collections []collectionReport `json:"collections"`
	Integrity   integrityReport    `json:"integrity"`
	Valid       bool               `json:"valid"`
}

// integrityReport counts dangling cross-collection references.
type integrityReport struct {
	PostsWithUnknownAccount    int `json:"posts_with_unknown_account"`
	PostsWithUnknownCampaign   int `json:"posts_with_unknown_campaign"`
	ReportsWithUnknownCampaign int `json:"reports_with_unknown_campaign"`
}

// newValidateCmd creates the 'validate' subcommand.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the collection files against their schemas",
		Long: `Validate every collection file against its schema and check referential
integrity between collections (posts referencing unknown accounts or
campaigns, scores and reports referencing unknown campaigns).

Dangling references are reported but are not fatal: the server resolves
them to "Unknown" at query time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}
}

func runValidate() error {
	sp := startSpinner("Validating collections...")

	provider := storage.NewFileProvider(dataDir, zap.NewNop().Sugar())

	result := validateResult{DataDir: dataDir, Valid: true}
	for _, name := range storage.CollectionNames {
		report := collectionReport{Collection: name}

		doc, err := provider.Collection(name)
		if err != nil {
			if os.IsNotExist(err) {
				result.Collections = append(result.Collections, report)
				continue
			}
			report.Errors = append(report.Errors, err.Error())
			result.Valid = false
			result.Collections = append(result.Collections, report)
			continue
		}
		report.Present = true

		for _, verr := range storage.ValidateCollection(name, doc) {
			report.Errors = append(report.Errors, verr.Error())
		}
		if len(report.Errors) > 0 {
			result.Valid = false
		} else {
			var records []json.RawMessage
			if err := json.Unmarshal(doc, &records); err == nil {
				report.Records = len(records)
			}
		}
		result.Collections = append(result.Collections, report)
	}

	result.Integrity = checkIntegrity()

	stopSpinner(sp)

	if outputJSON {
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		renderValidateResult(result)
	}
	if !result.Valid {
		return fmt.Errorf("validation failed")
	}
	return nil
}

// checkIntegrity loads the dataset the same way the server does and counts
// dangling references.
func checkIntegrity() integrityReport {
	logger := zap.NewNop().Sugar()
	store := storage.NewStore(storage.NewFileProvider(dataDir, logger), logger)
	store.Load()
	ds := store.Snapshot()

	var report integrityReport
	for _, p := range ds.Posts() {
		if _, err := ds.AccountByID(p.AccountID); err != nil {
			report.PostsWithUnknownAccount++
		}
		if p.CampaignID != "" {
			if _, err := ds.CampaignByID(p.CampaignID); err != nil {
				report.PostsWithUnknownCampaign++
			}
		}
	}
	for _, r := range ds.Reports() {
		if r.CampaignID != "" {
			if _, err := ds.CampaignByID(r.CampaignID); err != nil {
				report.ReportsWithUnknownCampaign++
			}
		}
	}
	return report
}

// renderValidateResult prints the validation outcome as a table.
func renderValidateResult(result validateResult) {
	headerColor.Printf("COLLECTIONS (%s)\n", result.DataDir)
	fmt.Printf("%-15s %-9s %-9s %s\n", "Collection", "Present", "Records", "Errors")
	for _, report := range result.Collections {
		present := "no"
		if report.Present {
			present = "yes"
		}
		fmt.Printf("%-15s %-9s %-9d %d\n", report.Collection, present, report.Records, len(report.Errors))
		for _, msg := range report.Errors {
			errorColor.Printf("  %s\n", msg)
		}
	}

	fmt.Println()
	headerColor.Println("REFERENTIAL INTEGRITY")
	printIntegrityLine("posts -> unknown account", result.Integrity.PostsWithUnknownAccount)
	printIntegrityLine("posts -> unknown campaign", result.Integrity.PostsWithUnknownCampaign)
	printIntegrityLine("reports -> unknown campaign", result.Integrity.ReportsWithUnknownCampaign)

	fmt.Println()
	if result.Valid {
		successColor.Println("Validation passed")
	} else {
		errorColor.Println("Validation failed")
	}
}

func printIntegrityLine(label string, count int) {
	if count == 0 {
		infoColor.Printf("  %-30s %d\n", label, count)
		return
	}
	warningColor.Printf("  %-30s %d\n", label, count)
}

// summaryResult is the output of the summary command.
type summaryResult struct {
	DataDir      string         `json:"data_dir"`
	Counts       map[string]int `json:"counts"`
	ThreatLevels map[string]int `json:"threat_levels"`
}

// newSummaryCmd creates the 'summary' subcommand.
func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print record counts and the threat-level distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary()
		},
	}
}

func runSummary() error {
	logger := zap.NewNop().Sugar()
	store := storage.NewStore(storage.NewFileProvider(dataDir, logger), logger)
	store.Load()
	ds := store.Snapshot()

	levels := map[string]int{"low": 0, "medium": 0, "high": 0, "critical": 0}
	for _, c := range ds.Campaigns() {
		levels[string(c.ThreatLevel)]++
	}

	result := summaryResult{
		DataDir:      dataDir,
		Counts:       ds.Counts(),
		ThreatLevels: levels,
	}

	if outputJSON {
		return printJSON(result)
	}

	headerColor.Printf("DATASET SUMMARY (%s)\n", result.DataDir)
	for _, name := range storage.CollectionNames {
		fmt.Printf("  %-15s %d\n", name, result.Counts[name])
	}
	fmt.Println()
	headerColor.Println("THREAT LEVELS")
	for _, level := range []string{"low", "medium", "high", "critical"} {
		fmt.Printf("  %-15s %d\n", level, result.ThreatLevels[level])
	}
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// startSpinner shows a progress spinner unless quiet or JSON output is on.
func startSpinner(message string) *spinner.Spinner {
	if quiet || outputJSON {
		return nil
	}
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Suffix = " " + message
	sp.Start()
	return sp
}

func stopSpinner(sp *spinner.Spinner) {
	if sp != nil {
		sp.Stop()
	}
}
