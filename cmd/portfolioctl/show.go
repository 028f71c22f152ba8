package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/models"
)

var showLang string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the merged content of one language as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := models.ParseLanguage(showLang)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		a, err := openApp(ctx, true)
		if err != nil {
			return err
		}
		defer a.Close()

		snap, err := a.Reconciler.Snapshot(lang)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	},
}

func init() {
	showCmd.Flags().StringVarP(&showLang, "lang", "l", string(models.English), "language to print (en or fr)")
}
