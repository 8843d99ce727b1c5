package main

import (
	"context"
	"fmt"

	"carehome/internal/archive"
	"carehome/internal/blob"
	"carehome/pkg/domain"

	"github.com/spf13/cobra"
)

func (a *app) newResidentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resident",
		Short: "Admit, move and discharge residents",
	}
	cmd.AddCommand(a.newResidentAddCmd(), a.newResidentMoveCmd(), a.newResidentDischargeCmd())
	return cmd
}

func (a *app) newResidentAddCmd() *cobra.Command {
	var id, name, gender, age string
	cmd := &cobra.Command{
		Use:   "add <bed>",
		Short: "Admit a resident into a vacant bed (manager only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := a.actor()
			if err != nil {
				return err
			}
			g, err := domain.ParseGender(gender)
			if err != nil {
				return err
			}
			years, err := domain.ParseAge(age)
			if err != nil {
				return err
			}
			res := domain.Resident{ID: id, Name: name, Gender: g, Age: years}
			if err := a.registry.AddResident(ctxOf(cmd), actor, res, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "admitted %s to %s\n", res.Name, args[0])
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&id, "id", "", "resident id")
	f.StringVar(&name, "name", "", "full name")
	f.StringVar(&gender, "gender", "", "M or F")
	f.StringVar(&age, "age", "", "age in years")
	_ = cmd.MarkFlagRequired("id")
	return mutating(cmd)
}

func (a *app) newResidentMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <resident> <bed>",
		Short: "Move a resident to another vacant bed (nurse only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := a.actor()
			if err != nil {
				return err
			}
			if err := a.registry.MoveResident(ctxOf(cmd), actor, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "moved %s to %s\n", args[0], args[1])
			return nil
		},
	}
	return mutating(cmd)
}

func (a *app) newResidentDischargeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discharge <resident>",
		Short: "Archive a resident's history and free their bed (manager only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxOf(cmd)
			actor, err := a.actor()
			if err != nil {
				return err
			}
			sink, err := a.archiveSink(ctx)
			if err != nil {
				return err
			}
			if err := a.registry.DischargeResident(ctx, actor, args[0], sink); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "discharged %s, archive %s\n", args[0], sink.LastKey())
			return nil
		},
	}
	return mutating(cmd)
}

func (a *app) archiveSink(ctx context.Context) (*archive.BlobSink, error) {
	ac := a.cfg.Archive
	store, err := blob.Open(ctx, blob.Options{
		Driver: blob.Driver(ac.Driver),
		Root:   ac.Root,
		S3: blob.S3Config{
			Region:          ac.S3.Region,
			Bucket:          ac.S3.Bucket,
			Prefix:          ac.S3.Prefix,
			Endpoint:        ac.S3.Endpoint,
			AccessKeyID:     ac.S3.AccessKeyID,
			SecretAccessKey: ac.S3.SecretAccessKey,
			PathStyle:       ac.S3.PathStyle,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open archive store: %w", err)
	}
	enc, err := archive.EncoderFor(archive.Format(ac.Format))
	if err != nil {
		return nil, err
	}
	return archive.NewBlobSink(store, enc, archive.WithPrefix(ac.Prefix), archive.WithSinkLogger(a.logger)), nil
}
