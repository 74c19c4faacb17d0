package app

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/designspec/designspec-web/internal/db/models"
)

var errEmptyPassword = errors.New("password can not be empty")

func init() { //nolint:gochecknoinits
	rootCmd.AddCommand(hashPasswordCmd)
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print the argon2id hash of a password for auth.local.adminPasswordHash",
	Long: `Print the argon2id hash of a password. Without an argument the password
is read from the first line of stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string

		if len(args) == 1 {
			password = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errEmptyPassword
			}

			password = strings.TrimRight(line, "\r\n")
		}

		if password == "" {
			return errEmptyPassword
		}

		hash, err := models.HashPassword(password)
		if err != nil {
			return err //nolint:wrapcheck
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)

		return err //nolint:wrapcheck
	},
}
