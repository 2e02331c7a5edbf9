package cli

import (
	"context"
	"fmt"
	"time"
)

// recentScansLimit is how many server-side scan log entries status shows
const recentScansLimit = 5

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Scanner Status ===")
	c.io.Println()

	if c.settings.UserID != "" {
		c.io.Printf("User: %s\n", c.settings.UserID)
	} else {
		c.io.Println("User: not set")
	}

	if c.settings.Offline {
		c.io.Println("Mode: offline")
	} else {
		c.io.Printf("Mode: online (%s)\n", c.settings.ServerURL)
		c.printServer(ctx)
	}

	last, err := c.syncService.LastFlush(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last flush time: %w", err)
	}
	if last.IsZero() {
		c.io.Println("Last flush: never")
	} else {
		c.io.Printf("Last flush: %s\n", last.Format(time.RFC3339))
	}

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		// Не прерываем выполнение, просто выводим предупреждение
		c.io.Printf("\nWarning: Failed to get pending count: %v\n", err)
		return nil
	}

	c.io.Println()
	if pending.Total() > 0 {
		c.io.Printf("⚠️  Pending: %d attendance record(s), %d scan log entr(ies)\n", pending.Attendance, pending.ScanLog)
		c.io.Println("Run 'fairscan flush' to push them to the server.")
	} else {
		c.io.Println("✓ Nothing waiting for the server")
	}
	return nil
}

// printServer reports server reachability and the latest scans it has
// recorded for the user. Failures are printed, not returned.
func (c *Cli) printServer(ctx context.Context) {
	if c.server == nil {
		return
	}

	if err := c.server.Health(ctx); err != nil {
		c.io.Printf("Server: unreachable (%v)\n", err)
		return
	}
	c.io.Println("Server: reachable")

	entries, err := c.server.ListScanLog(ctx, recentScansLimit)
	if err != nil {
		c.io.Printf("Warning: Failed to get recent scans: %v\n", err)
		return
	}
	if len(entries) == 0 {
		c.io.Println("Recent scans: none")
		return
	}

	c.io.Println("Recent scans:")
	for _, e := range entries {
		line := fmt.Sprintf("  %s  %s  %s", e.Timestamp.Format(time.RFC3339), e.ScanType, e.Result)
		if e.TargetID != "" {
			line += "  " + e.TargetID
		}
		c.io.Println(line)
	}
}
