package main

import (
	"fmt"
	"os"

	"carehome/internal/archive"

	"github.com/spf13/cobra"
)

func (a *app) newComplianceCmd() *cobra.Command {
	var report bool
	cmd := &cobra.Command{
		Use:   "compliance",
		Short: "Check staffing rules; exits non-zero on the first violation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := ctxOf(cmd)
			if !report {
				if err := a.registry.CheckCompliance(ctx); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "compliant")
				return nil
			}
			res, err := a.registry.ComplianceReport(ctx)
			if err != nil {
				return err
			}
			if len(res.Violations) == 0 {
				fmt.Fprintln(a.out, "compliant")
				return nil
			}
			for _, v := range res.Violations {
				fmt.Fprintf(a.out, "[%s] %s: %s\n", v.Severity, v.Rule, v.Message)
			}
			if res.HasBlocking() {
				return fmt.Errorf("%d compliance violation(s)", len(res.Violations))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&report, "report", false, "list every violation instead of stopping at the first")
	return cmd
}

func (a *app) newAuditCmd() *cobra.Command {
	var export string
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Print or export the audit trail",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			entries := a.registry.AuditLog()
			if export == "" {
				for _, e := range entries {
					fmt.Fprintln(a.out, e)
				}
				return nil
			}
			f, err := os.Create(export) // #nosec G304 -- operator-chosen export path
			if err != nil {
				return fmt.Errorf("create export: %w", err)
			}
			if err := archive.WriteAuditCSV(f, entries); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "exported %d entries to %s\n", len(entries), export)
			return nil
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "write the audit trail as CSV to this file")
	return cmd
}
