// Command personctl manages person records directly against the configured storage.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"personapi/config"
	"personapi/internal/domain/entity"
	logs "personapi/internal/infra/log"
	"personapi/internal/infra/persistence/gormstore"
	"personapi/internal/usecase"
	"personapi/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// app carries the state shared by every subcommand.
type app struct {
	connect func(ctx context.Context) (usecase.PersonUsecase, func() error, error)

	output string
	uc     usecase.PersonUsecase
	closer func() error
}

func main() {
	a := &app{connect: connectFromConfig}

	err := newRootCmd(a).Execute()
	if closeErr := a.close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Exit(1)
	}
}

// connectFromConfig opens the storage named by config.yaml and the environment.
func connectFromConfig(ctx context.Context) (usecase.PersonUsecase, func() error, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	// stdout carries command output.
	logger, err := logs.NewWithWriter(os.Stderr, cfg)
	if err != nil {
		return nil, nil, err
	}

	db, err := gormstore.Open(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := gormstore.EnsureSchema(ctx, db); err != nil {
		_ = gormstore.Close(db)

		return nil, nil, err
	}

	uc := impl.NewPersonService(gormstore.NewPersonRepository(db), gormstore.NewTransactionManager(db), logger)

	return uc, func() error { return gormstore.Close(db) }, nil
}

func (a *app) usecase(ctx context.Context) (usecase.PersonUsecase, error) {
	if a.uc != nil {
		return a.uc, nil
	}

	uc, closer, err := a.connect(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage")
	}
	a.uc, a.closer = uc, closer

	return uc, nil
}

func (a *app) close() error {
	if a.closer == nil {
		return nil
	}

	return a.closer()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "personctl",
		Short:        "Manage person records",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.output != outputText && a.output != outputJSON {
				return errors.Errorf("unsupported output format %q (text|json)", a.output)
			}

			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.output, "output", "o", outputText, "Output format: text|json")

	root.AddCommand(
		newListCmd(a),
		newCountCmd(a),
		newGetCmd(a),
		newCreateCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
	)

	return root
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.usecase(cmd.Context())
			if err != nil {
				return err
			}

			persons, err := uc.ListPersons(cmd.Context())
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), persons)
		},
	}
}

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of stored persons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.usecase(cmd.Context())
			if err != nil {
				return err
			}

			count, err := uc.CountPersons(cmd.Context())
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), count)
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			uc, err := a.usecase(cmd.Context())
			if err != nil {
				return err
			}

			person, err := uc.GetPerson(cmd.Context(), id)
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), person)
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	var firstName, lastName string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.usecase(cmd.Context())
			if err != nil {
				return err
			}

			person, err := uc.CreatePerson(cmd.Context(), &entity.Person{FirstName: firstName, LastName: lastName})
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), person)
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")

	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	var firstName, lastName string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the names of a person; omitted names are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			uc, err := a.usecase(cmd.Context())
			if err != nil {
				return err
			}

			person, err := uc.UpdatePerson(cmd.Context(), &entity.Person{FirstName: firstName, LastName: lastName}, id)
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), person)
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "New first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "New last name")

	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a person and print the removed record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			uc, err := a.usecase(cmd.Context())
			if err != nil {
				return err
			}

			person, err := uc.DeletePerson(cmd.Context(), id)
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), person)
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid person id %q", raw)
	}

	return id, nil
}

func (a *app) print(w io.Writer, v any) error {
	if a.output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.WithStack(enc.Encode(v))
	}

	switch value := v.(type) {
	case *entity.Person:
		_, err := fmt.Fprintf(w, "%d\t%s\t%s\n", value.ID, value.FirstName, value.LastName)

		return errors.WithStack(err)
	case []*entity.Person:
		for _, person := range value {
			if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", person.ID, person.FirstName, person.LastName); err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	default:
		_, err := fmt.Fprintln(w, value)

		return errors.WithStack(err)
	}
}

