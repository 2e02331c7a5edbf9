package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/iudanet/fairscan/internal/scanner"
)

// quitCommand завершает чтение токенов
const quitCommand = "q"

// screen is the terminal side of the scanner: camera surface, navigation
// target and alert sink.
type screen struct {
	c *Cli
}

var (
	_ scanner.Surface   = (*screen)(nil)
	_ scanner.Navigator = (*screen)(nil)
	_ scanner.Notifier  = (*screen)(nil)
)

func (s *screen) SetActive(active bool) {
	s.c.logger.Debug("Camera toggled", "active", active)
}

func (s *screen) Notify(ctx context.Context, msg scanner.Message) {
	s.c.io.Printf("⚠️  %s: %s\n", msg.Title, msg.Body)
}

func (s *screen) Navigate(ctx context.Context, intent scanner.Intent) {
	c := s.c
	p := intent.Params

	switch intent.Screen {
	case scanner.ScreenDigitalCard:
		c.io.Println("=== Digital Card ===")
		c.io.Printf("User: %s\n", p[scanner.ParamUserID])
	case scanner.ScreenEventCompanyInfo:
		c.io.Println("=== Company Info ===")
		c.io.Printf("Event:   %s\n", p[scanner.ParamEventID])
		c.io.Printf("Company: %s\n", p[scanner.ParamCompanyID])
	case scanner.ScreenEventForm:
		if err := c.submitForm(ctx, p[scanner.ParamEventID], p[scanner.ParamQuestionnaireID]); err != nil {
			c.logger.Error("Questionnaire form failed", "event_id", p[scanner.ParamEventID], "error", err)
			c.io.Printf("Error: %v\n", err)
		}
	case scanner.ScreenQRRecorded:
		c.showRecorded(p[scanner.ParamMessage], p[scanner.ParamSuccess] == "true")
	default:
		c.logger.Warn("Navigation to unknown screen", "screen", intent.Screen)
	}
}

// runScan reads one token per line and feeds it to a scan dispatcher,
// the way the camera delivers decoded strings.
func (c *Cli) runScan(ctx context.Context) error {
	cipher, err := c.tokenCipher()
	if err != nil {
		return err
	}

	s := &screen{c: c}
	d, err := scanner.NewDispatcher(scanner.Deps{
		Cipher:    cipher,
		Ledger:    c.syncService,
		Audit:     c.syncService,
		Surface:   s,
		Navigator: s,
		Notifier:  s,
		Logger:    c.logger,
		Now:       c.now,
		UserID:    c.settings.UserID,
	})
	if err != nil {
		return fmt.Errorf("failed to start scanner: %w", err)
	}
	defer d.Close()

	d.SetPermission(true)
	d.Focus()

	if c.settings.UserID == "" {
		c.io.Println("⚠️  No user set: attendance codes will not be recorded.")
	}
	c.io.Printf("Scanner ready. One token per line, %q to quit.\n", quitCommand)

	counts := make(map[scanner.OutcomeKind]int)
	for ctx.Err() == nil {
		line, err := c.io.ReadInput("Scan> ")
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if line == quitCommand {
			break
		}
		if line == "" {
			continue
		}

		out := d.HandleDecode(ctx, line)
		counts[out.Kind]++

		// Экран результата закрыт, камера снова включается
		if d.State() == scanner.StateNavigated {
			if err := d.Activate(); err != nil {
				c.logger.Warn("Failed to reactivate camera", "error", err)
			}
		}
	}

	c.io.Println()
	c.io.Printf("Scans: %d opened a screen, %d showed an alert, %d ignored\n",
		counts[scanner.OutcomeNavigate],
		counts[scanner.OutcomeRecoverable],
		counts[scanner.OutcomeIgnored]+counts[scanner.OutcomeDiscarded])
	return nil
}

func (c *Cli) showRecorded(message string, success bool) {
	if success {
		c.io.Printf("✓ %s\n", message)
		return
	}
	c.io.Printf("✗ %s\n", message)
}
