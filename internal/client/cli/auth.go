package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/lingosync/internal/client/auth"
)

func (c *Cli) runLogin(ctx context.Context) error {
	existing, err := c.authService.Current(ctx)
	if err == nil {
		c.io.Printf("Already signed in as %s\n", existing.UserID)
		return nil
	}
	if !errors.Is(err, auth.ErrNotSignedIn) {
		return err
	}

	data, err := c.authService.SignIn(ctx)
	if err != nil {
		return fmt.Errorf("sign-in failed: %w", err)
	}

	c.io.Println("✓ Signed in anonymously")
	c.io.Printf("User ID: %s\n", data.UserID)
	c.io.Println("Run 'lingosync pull' to download progress from the cloud.")
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.SignOut(ctx); err != nil {
		if errors.Is(err, auth.ErrNotSignedIn) {
			c.io.Println("Not signed in")
			return nil
		}
		return err
	}

	c.io.Println("✓ Signed out. Local progress is kept on this device.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== LingoSync Status ===")
	c.io.Println()

	data, err := c.authService.Current(ctx)
	switch {
	case errors.Is(err, auth.ErrNotSignedIn):
		c.io.Println("Status: Not signed in")
		c.io.Println("Run 'lingosync login' to enable cloud sync.")
	case err != nil:
		return err
	default:
		c.io.Println("Status: Signed in")
		c.io.Printf("User ID: %s\n", data.UserID)
		if data.Expired(c.now()) {
			c.io.Println("Token: expired, will be refreshed on next sync")
		} else {
			c.io.Printf("Token expires: %s\n", data.ExpiresAt.Local().Format(time.RFC3339))
		}
	}

	upload, download, err := c.syncService.LastSyncTimes(ctx)
	if err != nil {
		// Не прерываем выполнение
		c.io.Printf("\nWarning: failed to read sync times: %v\n", err)
	} else {
		c.io.Println()
		c.io.Printf("Last upload:   %s\n", c.formatSyncTime(upload))
		c.io.Printf("Last download: %s\n", c.formatSyncTime(download))
	}

	keys, err := c.local.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list local keys: %w", err)
	}
	c.io.Printf("Local keys:    %d\n", len(keys))

	return nil
}

func (c *Cli) formatSyncTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	ago := c.now().Sub(t).Round(time.Second)
	return fmt.Sprintf("%s (%s ago)", t.Local().Format(time.RFC3339), ago)
}
