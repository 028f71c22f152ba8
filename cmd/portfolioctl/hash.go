package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/auth"
)

var hashCmd = &cobra.Command{
	Use:   "hash [password]",
	Short: "Print the ADMIN_PASSWORD_HASH value for a password",
	Long:  "Print the hex SHA-256 digest of a password. Reads one line from stdin when no argument is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.New("no password given")
			}
			password = strings.TrimRight(line, "\r\n")
		}
		if password == "" {
			return errors.New("no password given")
		}
		fmt.Fprintln(cmd.OutOrStdout(), auth.HashPassword(password))
		return nil
	},
}
