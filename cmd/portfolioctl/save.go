package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/auth"
	"github.com/rpupo63/portfolio-backend/models"
)

var (
	saveLangs    []string
	savePassword string
	saveFile     string
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Push content to the remote store",
	Long: `Fetch the current content, optionally merge a JSON snapshot file into
it, and write the result back to the remote store.

With --file, exactly one --lang is required; the file has the same shape as
the output of "portfolioctl show". Fields missing from the file keep their
current values.

The admin password is read from --password or PORTFOLIO_PASSWORD.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		langs := make([]models.Language, 0, len(saveLangs))
		for _, raw := range saveLangs {
			lang, err := models.ParseLanguage(raw)
			if err != nil {
				return err
			}
			langs = append(langs, lang)
		}

		password := savePassword
		if password == "" {
			password = os.Getenv("PORTFOLIO_PASSWORD")
		}
		if password == "" {
			return errors.New("a password is required (--password or PORTFOLIO_PASSWORD)")
		}

		var patch *models.SnapshotPatch
		if saveFile != "" {
			if len(langs) != 1 {
				return errors.New("--file needs exactly one --lang")
			}
			data, err := os.ReadFile(saveFile)
			if err != nil {
				return err
			}
			patch = &models.SnapshotPatch{}
			if err := json.Unmarshal(data, patch); err != nil {
				return fmt.Errorf("decoding %s: %w", saveFile, err)
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		a, err := openApp(ctx, true)
		if err != nil {
			return err
		}
		defer a.Close()

		if patch != nil {
			if err := a.Reconciler.ApplyPatch(langs[0], patch); err != nil {
				return err
			}
		}

		if err := a.Reconciler.SaveDataAs(ctx, auth.NewVerifiedSession(password), langs...); err != nil {
			return err
		}

		saved := "en, fr"
		if len(langs) > 0 {
			names := make([]string, len(langs))
			for i, l := range langs {
				names[i] = l.String()
			}
			saved = strings.Join(names, ", ")
		}
		fmt.Printf("Saved %s\n", saved)
		return nil
	},
}

func init() {
	saveCmd.Flags().StringSliceVarP(&saveLangs, "lang", "l", nil, "languages to save (default en,fr)")
	saveCmd.Flags().StringVarP(&savePassword, "password", "p", "", "admin password")
	saveCmd.Flags().StringVarP(&saveFile, "file", "f", "", "JSON snapshot to merge before saving")
}
