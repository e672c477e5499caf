package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bitrise-io/go-steputils/stepconf"
	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-testrail-reporter/behave"
	"github.com/bitrise-steplib/steps-testrail-reporter/config"
	"github.com/bitrise-steplib/steps-testrail-reporter/reporter"
	"github.com/bitrise-steplib/steps-testrail-reporter/testrail"
	"github.com/docker/go-units"
)

const (
	submittedCountOutputKey = "TESTRAIL_SUBMITTED_COUNT"
	failedCasesOutputKey    = "TESTRAIL_FAILED_CASES"
)

// Config ...
type Config struct {
	ConfigPath      string          `env:"config_path"`
	ReportPath      string          `env:"report_path,required"`
	ReportFormat    string          `env:"report_format"`
	Branch          string          `env:"branch"`
	Username        string          `env:"TESTRAIL_USER,required"`
	APIKey          stepconf.Secret `env:"TESTRAIL_KEY,required"`
	ShowFailedCases string          `env:"show_failed_cases"`
	Verbose         string          `env:"verbose"`
}

// options are the optional inputs with their defaults applied.
type options struct {
	ReportFormat    behave.Format
	ShowFailedCases bool
	Verbose         bool
}

func parseOptions(cfg Config) (options, error) {
	format, err := reportFormat(cfg.ReportFormat)
	if err != nil {
		return options{}, err
	}

	showFailedCases, err := boolInput("show_failed_cases", cfg.ShowFailedCases, true)
	if err != nil {
		return options{}, err
	}

	verbose, err := boolInput("verbose", cfg.Verbose, false)
	if err != nil {
		return options{}, err
	}

	return options{
		ReportFormat:    format,
		ShowFailedCases: showFailedCases,
		Verbose:         verbose,
	}, nil
}

func reportFormat(input string) (behave.Format, error) {
	switch format := behave.Format(strings.TrimSpace(input)); format {
	case "":
		return behave.FormatBehave, nil
	case behave.FormatBehave, behave.FormatCucumber:
		return format, nil
	default:
		return "", fmt.Errorf("report_format: %q is not one of %s, %s", input, behave.FormatBehave, behave.FormatCucumber)
	}
}

func boolInput(key, value string, defaultValue bool) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultValue, nil
	}

	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%s: %q is not one of true, false", key, value)
	}
}

func fail(logger log.Logger, format string, v ...interface{}) {
	logger.Errorf(format, v...)
	os.Exit(1)
}

func main() {
	logger := log.NewLogger()
	envRepo := env.NewRepository()
	cmdFactory := command.NewFactory(envRepo)

	var cfg Config
	if err := stepconf.Parse(&cfg); err != nil {
		fail(logger, "Issue with input: %s", err)
	}

	opts, err := parseOptions(cfg)
	if err != nil {
		fail(logger, "Issue with input: %s", err)
	}

	stepconf.Print(cfg)
	fmt.Println()
	logger.EnableDebugLog(opts.Verbose)

	projectsConfig, err := config.Load(cfg.ConfigPath)
	if err != nil {
		fail(logger, "%s", err)
	}

	branch, err := resolveBranch(cfg.Branch, envRepo, gitCurrentBranch(cmdFactory))
	if err != nil {
		fail(logger, "%s", err)
	}
	logger.Infof("Reporting results of branch: %s", branch)

	reportPth, err := behave.NewReportPathResolver(envRepo, pathutil.NewPathModifier(), pathutil.NewPathChecker()).Resolve(cfg.ReportPath)
	if err != nil {
		fail(logger, "Invalid report path: %s", err)
	}

	features, err := behave.ParseFile(reportPth, opts.ReportFormat)
	if err != nil {
		fail(logger, "Failed to parse report: %s", err)
	}
	logger.Printf("%d features found in %s", len(features), reportPth)

	client := testrail.NewClient(projectsConfig.BaseURL, cfg.Username, string(cfg.APIKey), logger)
	r, err := reporter.New(projectsConfig, branch, client, logger)
	if err != nil {
		fail(logger, "%s", err)
	}
	r.ShowFailedCases = opts.ShowFailedCases

	fmt.Println()
	logger.Infof("Adding results to TestRail")

	start := time.Now()
	ctx := context.Background()
	for _, feature := range features {
		logger.Printf("Feature: %s", feature.Name)
		if err := r.Feature(ctx, feature); err != nil {
			fail(logger, "%s", featureFailure(feature.Name, err))
		}
	}

	fmt.Println()
	r.End()
	logger.Printf("Talking to TestRail took %s", units.HumanDuration(time.Since(start)))

	exporter := export.NewExporter(cmdFactory)
	if err := exportOutputs(&exporter, r.Summary()); err != nil {
		fail(logger, "%s", err)
	}

	fmt.Println()
	if len(r.Summary().FailedCases) > 0 {
		logger.Warnf("%d results could not be added", len(r.Summary().FailedCases))
		return
	}
	logger.Donef("Success")
}

// featureFailure renders the error without its stack trace.
func featureFailure(feature string, err error) string {
	return fmt.Sprintf("Failed to report feature %q: %s", feature, err)
}

type outputExporter interface {
	ExportOutput(key, value string) error
}

func exportOutputs(exporter outputExporter, summary *reporter.Summary) error {
	outputs := map[string]string{
		submittedCountOutputKey: strconv.Itoa(summary.Count(reporter.CategoryPassed)),
		failedCasesOutputKey:    failedCaseIDs(summary),
	}

	for key, value := range outputs {
		if err := exporter.ExportOutput(key, value); err != nil {
			return fmt.Errorf("failed to export %s: %w", key, err)
		}
	}
	return nil
}

// failedCaseIDs lists the cases whose result could not be added, like "100,200".
func failedCaseIDs(summary *reporter.Summary) string {
	var ids []string
	for _, failed := range summary.FailedCases {
		ids = append(ids, strconv.Itoa(failed.CaseID))
	}
	return strings.Join(ids, ",")
}
