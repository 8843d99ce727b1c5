package main

import (
	"fmt"
	"time"

	"carehome/pkg/domain"

	"github.com/spf13/cobra"
)

func (a *app) newPrescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prescribe <resident> <medicine> <dosage> <time>",
		Short:   "Attach a prescription to a resident (doctor only)",
		Example: `  carehome --as dev prescribe R1 Paracetamol 500mg 08:00`,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := a.actor()
			if err != nil {
				return err
			}
			at, err := domain.ParseTimeOfDay(args[3])
			if err != nil {
				return err
			}
			p := domain.Prescription{Medicine: args[1], Dosage: args[2], Time: at, DoctorID: actor.ID}
			_, lookupErr := a.registry.Resident(args[0])
			if err := a.registry.AddPrescription(ctxOf(cmd), actor, args[0], p); err != nil {
				return err
			}
			if lookupErr != nil {
				fmt.Fprintf(a.out, "no active resident %s; nothing prescribed\n", args[0])
				return nil
			}
			fmt.Fprintf(a.out, "prescribed %s for %s\n", p, args[0])
			return nil
		},
	}
	return mutating(cmd)
}

func (a *app) newAdministerCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "administer <resident> <medicine> <dosage>",
		Short: "Record an administered dose (nurse only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := a.actor()
			if err != nil {
				return err
			}
			var when time.Time
			if at != "" {
				if when, err = domain.ParseTimestamp(at); err != nil {
					return err
				}
			}
			if err := a.registry.AdministerMedication(ctxOf(cmd), actor, args[0], args[1], args[2], when); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "recorded %s %s for %s\n", args[1], args[2], args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "administration time (RFC 3339 or YYYY-MM-DD HH:MM, default now)")
	return mutating(cmd)
}
