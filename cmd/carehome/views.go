package main

import (
	"fmt"
	"text/tabwriter"

	"carehome/pkg/domain"

	"github.com/spf13/cobra"
)

func (a *app) newBedsCmd() *cobra.Command {
	var vacant bool
	cmd := &cobra.Command{
		Use:   "beds",
		Short: "List beds and their occupants",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BED\tOCCUPANT")
			for _, b := range a.registry.Beds() {
				if vacant && b.Occupied() {
					continue
				}
				occupant := "-"
				if b.OccupantID != nil {
					occupant = *b.OccupantID
				}
				fmt.Fprintf(w, "%s\t%s\n", b.ID, occupant)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&vacant, "vacant", false, "only list vacant beds")
	return cmd
}

func (a *app) newResidentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "residents [id]",
		Short: "List active residents, or show one resident in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				res, err := a.registry.Resident(args[0])
				if err != nil {
					return err
				}
				return a.printResident(res)
			}
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tGENDER\tAGE\tBED")
			for _, res := range a.registry.Residents() {
				bed := "-"
				if res.BedID != nil {
					bed = *res.BedID
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", res.ID, res.Name, res.Gender, res.Age, bed)
			}
			return w.Flush()
		},
	}
}

func (a *app) printResident(res domain.Resident) error {
	fmt.Fprintln(a.out, res)
	if len(res.Prescriptions) > 0 {
		fmt.Fprintln(a.out, "Prescriptions:")
		for _, p := range res.Prescriptions {
			fmt.Fprintf(a.out, "  %s\n", p)
		}
	}
	if len(res.Administrations) > 0 {
		fmt.Fprintln(a.out, "Administered:")
		for _, rec := range res.Administrations {
			fmt.Fprintf(a.out, "  %s\n", rec)
		}
	}
	return nil
}
