package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/fairscan/internal/crypto"
	"github.com/iudanet/fairscan/internal/task"
)

var errMintUsage = errors.New("usage: mint attendance <event> [questionnaire] | mint company <event> <company> | mint card <user>")

func (c *Cli) runKeygen() error {
	secret, err := crypto.GenerateSecret()
	if err != nil {
		return err
	}
	c.io.Println(crypto.FormatSecret(secret))
	return nil
}

// runMint prints a token for one of the issuing screens
func (c *Cli) runMint(args []string) error {
	t, err := taskFromArgs(args)
	if err != nil {
		return err
	}

	plaintext, err := task.Encode(t)
	if err != nil {
		return fmt.Errorf("failed to encode task: %w", err)
	}

	cipher, err := c.tokenCipher()
	if err != nil {
		return err
	}
	token, err := cipher.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("failed to mint token: %w", err)
	}

	c.logger.Debug("Token minted",
		"task", t.Name(),
		"scheme", cipher.Scheme().String(),
		"fingerprint", crypto.Fingerprint(token),
	)
	c.io.Println(token)
	return nil
}

func taskFromArgs(args []string) (task.Task, error) {
	if len(args) < 2 {
		return nil, errMintUsage
	}

	var t task.Task
	switch args[0] {
	case "attendance":
		if len(args) > 3 {
			return nil, errMintUsage
		}
		a := task.Attendance{EventID: args[1]}
		if len(args) == 3 {
			a.QuestionnaireID = args[2]
		}
		t = a
	case "company":
		if len(args) != 3 {
			return nil, errMintUsage
		}
		t = task.ViewCompanyInfo{EventID: args[1], CompanyID: args[2]}
	case "card":
		if len(args) != 2 {
			return nil, errMintUsage
		}
		t = task.ViewDigitalCard{UserID: args[1]}
	default:
		return nil, fmt.Errorf("unknown token kind %q: %w", args[0], errMintUsage)
	}
	return t, nil
}

// runDecode decrypts a token and prints its envelope
func (c *Cli) runDecode(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: decode <token>")
	}

	cipher, err := c.tokenCipher()
	if err != nil {
		return err
	}
	plaintext, err := cipher.Decrypt(args[0])
	if err != nil {
		return err
	}

	t, err := task.Parse(plaintext)
	if err != nil {
		return err
	}

	c.io.Printf("Task: %s\n", t.Name())
	if _, ok := t.(task.Unknown); ok {
		c.io.Println("⚠️  Unknown task, a scanner would show \"Invalid QR Code\"")
	}

	enc := json.NewEncoder(c.io)
	enc.SetIndent("", "  ")
	return enc.Encode(json.RawMessage(plaintext))
}
