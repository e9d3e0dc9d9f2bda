package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/naijatax/paye-calculator/internal/config"
	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/naijatax/paye-calculator/internal/output"
	"github.com/naijatax/paye-calculator/internal/payroll"
)

func (a *app) newPayrollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Run monthly payroll over an employee roster",
	}
	cmd.AddCommand(a.newPayrollRunCmd(), a.newPayrollImportCmd(), a.newPayrollStoredCmd())
	return cmd
}

func (a *app) newPayrollRunCmd() *cobra.Command {
	var (
		rosterPath string
		asCSV      bool
	)
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run payroll directly from a roster YAML file",
		Example: `  paye payroll run --roster staff.yaml --csv > payroll.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := config.NewInputParser().LoadRoster(rosterPath)
			if err != nil {
				return err
			}
			return a.printPayroll(a.engine.RunPayroll("", roster.Employees), asCSV)
		},
	}
	cmd.Flags().StringVarP(&rosterPath, "roster", "r", "", "roster YAML file")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "print CSV instead of a table")
	_ = cmd.MarkFlagRequired("roster")
	return cmd
}

// storeFlags select the on-disk roster store and its owner
type storeFlags struct {
	dir   string
	owner string
}

func (f *storeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dir, "store", "rosters", "directory holding stored rosters")
	cmd.Flags().StringVar(&f.owner, "owner", "", "user id that owns the roster")
	_ = cmd.MarkFlagRequired("owner")
}

func (a *app) service(f storeFlags) (*payroll.Service, error) {
	store, err := payroll.NewFileStore(f.dir)
	if err != nil {
		return nil, err
	}
	return payroll.NewService(store, a.engine), nil
}

func (a *app) newPayrollImportCmd() *cobra.Command {
	var (
		store      storeFlags
		rosterPath string
		pro        bool
	)
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a roster file into the owner's stored roster (Pro)",
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := config.NewInputParser().LoadRoster(rosterPath)
			if err != nil {
				return err
			}
			svc, err := a.service(store)
			if err != nil {
				return err
			}
			imported, err := svc.Import(cmd.Context(), store.owner, pro, roster.Employees)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "imported %d employees for %s\n", len(imported), store.owner)
			return nil
		},
	}
	store.register(cmd)
	cmd.Flags().StringVarP(&rosterPath, "roster", "r", "", "roster YAML file")
	cmd.Flags().BoolVar(&pro, "pro", false, "caller holds a Pro subscription")
	_ = cmd.MarkFlagRequired("roster")
	return cmd
}

func (a *app) newPayrollStoredCmd() *cobra.Command {
	var (
		store storeFlags
		asCSV bool
	)
	cmd := &cobra.Command{
		Use:   "stored",
		Short: "Run payroll over the owner's stored roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(store)
			if err != nil {
				return err
			}
			run, err := svc.Run(cmd.Context(), store.owner)
			if err != nil {
				return err
			}
			return a.printPayroll(run, asCSV)
		},
	}
	store.register(cmd)
	cmd.Flags().BoolVar(&asCSV, "csv", false, "print CSV instead of a table")
	return cmd
}

func (a *app) printPayroll(run domain.PayrollRun, asCSV bool) error {
	if asCSV {
		data, err := output.PayrollCSV(run)
		if err != nil {
			return err
		}
		_, err = a.out.Write(data)
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Employee\tGross\tPAYE\tPension\tNHF\tNet Pay\t")
	for _, l := range run.Lines {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n", l.Employee.DisplayName(),
			output.FormatCurrency(l.Employee.MonthlyGross), output.FormatCurrency(l.PAYETax),
			output.FormatCurrency(l.Pension), output.FormatCurrency(l.NHF), output.FormatCurrency(l.NetPay))
	}
	t := run.Totals
	fmt.Fprintf(tw, "TOTALS\t%s\t%s\t%s\t%s\t%s\t\n", output.FormatCurrency(t.Gross), output.FormatCurrency(t.Tax),
		output.FormatCurrency(t.Pension), output.FormatCurrency(t.NHF), output.FormatCurrency(t.Net))
	return tw.Flush()
}
