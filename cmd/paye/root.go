package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/naijatax/paye-calculator/internal/calculation"
	"github.com/naijatax/paye-calculator/internal/config"
	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/naijatax/paye-calculator/internal/output"
)

var logLevels = map[string]logrus.Level{
	"trace": logrus.TraceLevel,
	"debug": logrus.DebugLevel,
	"info":  logrus.InfoLevel,
	"warn":  logrus.WarnLevel,
	"error": logrus.ErrorLevel,
}

// app carries the state shared by every subcommand
type app struct {
	rulesPath string
	format    string
	logLevel  string

	out    io.Writer
	log    *logrus.Entry
	engine *calculation.TaxEngine
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "paye",
		Short:         "Nigerian PAYE calculator: 2026 tax reform act vs 2021 law",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(errOut)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.rulesPath, "rules", "", "YAML file overriding the statutory rules")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "console", "report format ("+formatHelp()+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (trace debug info warn error)")

	root.AddCommand(
		a.newCalcCmd(),
		a.newTargetCmd(),
		a.newPayrollCmd(),
		a.newPayslipCmd(),
		a.newConvertCmd(),
		a.newServeCmd(),
	)
	return root
}

func formatHelp() string {
	names := append(output.AvailableFormatterNames(), "all")
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// setup configures logging and builds the engine from the selected rules
func (a *app) setup(errOut io.Writer) error {
	level, ok := logLevels[a.logLevel]
	if !ok {
		levels := lo.Keys(logLevels)
		sort.Strings(levels)
		return fmt.Errorf("log-level must be one of %s", strings.Join(levels, ", "))
	}
	logger := logrus.New()
	logger.SetOutput(errOut)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.0000"})
	a.log = logger.WithField("module", "paye")

	rules := calculation.DefaultRules()
	if a.rulesPath != "" {
		loaded, err := config.NewInputParser().LoadRules(a.rulesPath)
		if err != nil {
			return err
		}
		rules = *loaded
		a.log.WithField("file", a.rulesPath).Info("loaded rules")
	}
	a.engine = calculation.NewTaxEngineWithRules(rules)
	a.engine.SetLogger(a.log)
	return nil
}

// report renders a tax report in the selected format, or writes files when dir is set
func (a *app) report(report *domain.TaxReport, dir string) error {
	report.Assumptions = output.GenerateAssumptions(a.engine.Rules)
	if dir != "" {
		paths, err := output.GenerateReport(report, a.format, dir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(a.out, "wrote %s\n", p)
		}
		return nil
	}
	data, err := output.FormatReport(report, a.format)
	if err != nil {
		return err
	}
	_, err = a.out.Write(data)
	return err
}
