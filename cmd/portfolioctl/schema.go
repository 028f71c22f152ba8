package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Compare the database columns with the content tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		a, err := openApp(ctx, false)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.DB == nil {
			return errors.New("no database configured")
		}
		report, err := a.DB.ColumnReport()
		if err != nil {
			return err
		}
		report.Write(os.Stdout)
		if report.Mismatches() > 0 {
			return errors.New("schema mismatches found")
		}
		return nil
	},
}
