package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/naijatax/paye-calculator/internal/output"
	"github.com/naijatax/paye-calculator/pkg/dateutil"
)

func (a *app) newPayslipCmd() *cobra.Command {
	var (
		salary  salaryFlags
		name    string
		period  string
		pdfPath string
		pro     bool
	)
	cmd := &cobra.Command{
		Use:   "payslip",
		Short: "Print a monthly payslip, or write a PDF (Pro)",
		Example: `  paye payslip --gross 450000 --name "Chioma Eze" --period 2026-02
  paye payslip --gross 450000 --pdf payslip.pdf --pro`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := salary.inputs()
			if err != nil {
				return err
			}
			month := time.Now()
			if period != "" {
				month, err = time.Parse("2006-01", period)
				if err != nil {
					return fmt.Errorf("period must be YYYY-MM: %w", err)
				}
			}
			slip := output.Payslip{EmployeeName: name, Period: dateutil.MonthPeriod(month), Result: a.engine.CalculateTax(in)}

			if pdfPath == "" {
				_, err = a.out.Write(output.FormatPayslip(slip))
				return err
			}

			f, err := os.Create(pdfPath)
			if err != nil {
				return err
			}
			if err := output.WritePayslipPDF(f, slip, pro); err != nil {
				f.Close()
				_ = os.Remove(pdfPath)
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wrote %s\n", pdfPath)
			return nil
		},
	}
	salary.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "employee name")
	cmd.Flags().StringVar(&period, "period", "", "pay month as YYYY-MM (default current month)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write a PDF payslip to this path")
	cmd.Flags().BoolVar(&pro, "pro", false, "caller holds a Pro subscription")
	return cmd
}
