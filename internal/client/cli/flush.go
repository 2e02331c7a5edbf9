package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/fairscan/internal/client/sync"
)

func (c *Cli) runFlush(ctx context.Context) error {
	c.io.Println("=== Flush ===")

	result, err := c.syncService.Flush(ctx)
	if errors.Is(err, sync.ErrOffline) {
		return errors.New("cannot flush in offline mode, run without --offline")
	}
	if err != nil {
		if result != nil && result.Attendance+result.ScanLog > 0 {
			c.io.Printf("Partially pushed: %d attendance, %d scan log entries\n", result.Attendance, result.ScanLog)
		}
		return fmt.Errorf("flush failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Flush completed successfully!")
	c.io.Println()
	c.io.Printf("Attendance pushed: %d\n", result.Attendance)
	if result.Duplicates > 0 {
		c.io.Printf("Already on server: %d\n", result.Duplicates)
	}
	c.io.Printf("Scan log pushed:   %d\n", result.ScanLog)
	return nil
}
