package cmd

import (
	"github.com/spf13/cobra"

	"pdftools/internal/logger"
	"pdftools/internal/transform"
)

var protectCmd = &cobra.Command{
	Use:   "protect [input.pdf] [output.pdf]",
	Short: "Encrypt a PDF with a password",
	Long: `Encrypt a PDF with AES-256. The same password is set for opening the
document and for changing its permissions.`,
	Example: `  pdftools protect contract.pdf contract_locked.pdf --password s3cret`,
	Args:    cobra.ExactArgs(2),
	RunE:    runProtect,
}

var unlockCmd = &cobra.Command{
	Use:   "unlock [input.pdf] [output.pdf]",
	Short: "Remove password protection from a PDF",
	Long:  `Decrypt a password-protected PDF into an unencrypted copy.`,
	Example: `  pdftools unlock contract_locked.pdf contract.pdf --password s3cret`,
	Args:    cobra.ExactArgs(2),
	RunE:    runUnlock,
}

func init() {
	rootCmd.AddCommand(protectCmd)
	rootCmd.AddCommand(unlockCmd)

	protectCmd.Flags().StringP("password", "p", "", "Password to set (required)")
	_ = protectCmd.MarkFlagRequired("password")

	unlockCmd.Flags().StringP("password", "p", "", "Current password (required)")
	_ = unlockCmd.MarkFlagRequired("password")
}

func runProtect(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("protect")
	inputPath, outputPath := args[0], args[1]
	password, _ := cmd.Flags().GetString("password")

	if _, err := validatePDFFile(inputPath, log); err != nil {
		return err
	}

	if err := transform.Protect(inputPath, outputPath, password); err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("Encryption failed")
		return err
	}

	return printJSON(map[string]any{"success": true, "output": outputPath})
}

func runUnlock(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("unlock")
	inputPath, outputPath := args[0], args[1]
	password, _ := cmd.Flags().GetString("password")

	if _, err := validatePDFFile(inputPath, log); err != nil {
		return err
	}

	if err := transform.Unlock(inputPath, outputPath, password); err != nil {
		log.Error().Err(err).Str("file", inputPath).Msg("Decryption failed")
		return err
	}

	return printJSON(map[string]any{"success": true, "output": outputPath})
}
