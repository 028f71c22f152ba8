package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/services"
)

var uploadFolder string

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an image and print its public URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		contentType := http.DetectContentType(data)

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		a, err := openApp(ctx, false)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.Assets == nil {
			return errors.New("asset storage is not configured")
		}

		url, err := a.Assets.Upload(ctx, uploadFolder, filepath.Base(args[0]), contentType, bytes.NewReader(data))
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	},
}

var deleteAssetCmd = &cobra.Command{
	Use:   "delete <url>",
	Short: "Delete a previously uploaded asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		a, err := openApp(ctx, false)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.Assets == nil {
			return errors.New("asset storage is not configured")
		}
		a.Assets.Delete(ctx, args[0])
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadFolder, "folder", services.DefaultFolder, "folder inside the bucket")
	uploadCmd.AddCommand(deleteAssetCmd)
}
