package transform

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pdftools/internal/logger"
)

// Protect encrypts the PDF with AES-256, using the same password for the
// user and owner roles.
func Protect(inputPath, outputPath, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if err := checkInput(inputPath, newConf()); err != nil {
		if isEncrypted(inputPath) {
			return fmt.Errorf("%w: %s", ErrAlreadyEncrypted, inputPath)
		}
		return err
	}

	conf := model.NewAESConfiguration(password, password, 256)
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.EncryptFile(inputPath, outputPath, conf); err != nil {
		return fmt.Errorf("encrypting %s: %w", inputPath, err)
	}

	log := logger.WithComponent("transform")
	log.Info().
		Str("output", outputPath).
		Msg("password protected PDF")
	return nil
}

// Unlock removes encryption from the PDF using the given password.
func Unlock(inputPath, outputPath, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if _, err := fileSize(inputPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
	}
	log := logger.WithComponent("transform")
	if !isEncrypted(inputPath) {
		if err := checkInput(inputPath, newConf()); err != nil {
			return err
		}
		log.Info().
			Str("output", outputPath).
			Msg("input not encrypted, copying through")
		return copyFile(inputPath, outputPath)
	}

	// Encrypted input cannot pass plain validation, so the password goes
	// straight into the decrypt configuration.
	conf := model.NewAESConfiguration(password, password, 256)
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.DecryptFile(inputPath, outputPath, conf); err != nil {
		return fmt.Errorf("decrypting %s: %w", inputPath, err)
	}

	log.Info().
		Str("output", outputPath).
		Msg("unlocked PDF")
	return nil
}

// isEncrypted looks for an /Encrypt entry in the trailer. Encrypted files
// fail plain validation, so this is how protect distinguishes "encrypted"
// from "broken".
func isEncrypted(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return bytes.Contains(data, []byte("/Encrypt"))
}
