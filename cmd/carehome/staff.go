package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"carehome/pkg/domain"

	"github.com/spf13/cobra"
)

func (a *app) newStaffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Inspect and maintain the staff directory",
	}
	cmd.AddCommand(a.newStaffListCmd(), a.newStaffAddCmd(), a.newStaffPasswdCmd())
	return cmd
}

func (a *app) newStaffListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List staff; credentials are never shown",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "USERNAME\tID\tNAME\tROLE\tSPECIALIZATION\tSHIFTS")
			for _, s := range a.registry.StaffDirectory() {
				shifts := make([]string, 0, len(s.Shifts))
				for _, sh := range s.Shifts {
					shifts = append(shifts, sh.String())
				}
				specialty := s.Specialization
				if specialty == "" {
					specialty = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", s.Username, s.ID, s.Name, s.Role, specialty, strings.Join(shifts, "; "))
			}
			return w.Flush()
		},
	}
}

func (a *app) newStaffAddCmd() *cobra.Command {
	var (
		id, name, gender, username, password, role, specialization string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or replace a staff member (manager only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actor, err := a.actor()
			if err != nil {
				return err
			}
			g, err := domain.ParseGender(gender)
			if err != nil {
				return err
			}
			r, err := domain.ParseRole(role)
			if err != nil {
				return err
			}
			if err := domain.Require(strings.TrimSpace(id) != "", "id", "required"); err != nil {
				return err
			}
			s := domain.Staff{ID: id, Name: name, Gender: g, Username: username, Password: password, Role: r}
			if r == domain.RoleDoctor {
				s.Specialization = specialization
			}
			if err := a.registry.AddStaff(ctxOf(cmd), actor, s); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "added %s\n", s)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&id, "id", "", "staff id")
	f.StringVar(&name, "name", "", "full name")
	f.StringVar(&gender, "gender", "", "M or F")
	f.StringVar(&username, "username", "", "directory username")
	f.StringVar(&password, "password", "", "initial credential")
	f.StringVar(&role, "role", "", "manager, doctor or nurse")
	f.StringVar(&specialization, "specialization", "", "doctor specialization")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("role")
	return mutating(cmd)
}

func (a *app) newStaffPasswdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd <username> <new-password>",
		Short: "Change a staff member's credential (manager only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := a.actor()
			if err != nil {
				return err
			}
			if err := a.registry.ChangeStaffPassword(ctxOf(cmd), actor, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "password changed for %s\n", args[0])
			return nil
		},
	}
	return mutating(cmd)
}

func (a *app) newShiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Manage nurse shifts",
	}
	add := &cobra.Command{
		Use:     "add <username> <day> <start> <end>",
		Short:   "Assign a shift to a nurse (manager only)",
		Example: `  carehome --as mgr shift add nina monday 08:00 16:00`,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := a.actor()
			if err != nil {
				return err
			}
			day, err := domain.ParseWeekday(args[1])
			if err != nil {
				return err
			}
			start, err := domain.ParseTimeOfDay(args[2])
			if err != nil {
				return err
			}
			end, err := domain.ParseTimeOfDay(args[3])
			if err != nil {
				return err
			}
			shift, err := domain.NewShift(day, start, end)
			if err != nil {
				return err
			}
			if err := a.registry.AddShiftForNurse(ctxOf(cmd), actor, args[0], shift); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "assigned %s to %s\n", shift, args[0])
			return nil
		},
	}
	cmd.AddCommand(mutating(add))
	return cmd
}
