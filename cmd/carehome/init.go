package main

import (
	"errors"
	"fmt"

	"carehome/internal/core"
	"carehome/pkg/domain"

	"github.com/spf13/cobra"
)

// seedStaff is the directory a fresh facility starts with.
var seedStaff = []domain.Staff{
	{ID: "M1", Name: "Manager", Gender: domain.GenderMale, Username: "mgr", Password: "p", Role: domain.RoleManager},
	{ID: "N1", Name: "Nina", Gender: domain.GenderFemale, Username: "nina", Password: "p", Role: domain.RoleNurse},
	{ID: "D1", Name: "Dev", Gender: domain.GenderMale, Username: "dev", Password: "p", Role: domain.RoleDoctor, Specialization: "General"},
}

func (a *app) newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a fresh registry with the seed staff directory",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipLoad: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := ctxOf(cmd)
			if !force {
				_, err := a.store.LoadSnapshot(ctx)
				switch {
				case err == nil:
					return errors.New("registry already initialised; use --force to replace it")
				case !errors.Is(err, domain.ErrNoSnapshot):
					return err
				}
			}
			reg := core.New(a.registryOptions()...)
			bootstrap := domain.ActorFor(seedStaff[0])
			for _, s := range seedStaff {
				if err := reg.AddStaff(ctx, bootstrap, s); err != nil {
					return err
				}
			}
			a.registry = reg
			fmt.Fprintf(a.out, "initialised registry with %d beds and %d staff\n", len(reg.Beds()), len(seedStaff))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace existing saved state")
	return mutating(cmd)
}
