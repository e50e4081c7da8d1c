package app

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/modelreg/model-registry-api/internal/service"
)

var generatePasswordCmd = &cobra.Command{
	Use:   "generate-password",
	Short: "Generate a random password",
	Long: `Generate a cryptographically random password, suitable for new
registry users. The password is printed to stdout.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		length, err := cmd.Flags().GetInt("length")
		if err != nil {
			slog.Error("Error retrieving length flag", "error", err)
			return err
		}
		specialChars, err := cmd.Flags().GetBool("special-chars")
		if err != nil {
			slog.Error("Error retrieving special-chars flag", "error", err)
			return err
		}

		password, err := service.GeneratePassword(length, specialChars)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), password)
		return nil
	},
}

func init() {
	generatePasswordCmd.Flags().Int("length", service.DefaultPasswordLength, "Password length")
	generatePasswordCmd.Flags().Bool("special-chars", false, "Include special characters")
}
