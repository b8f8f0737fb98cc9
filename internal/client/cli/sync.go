package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	clientsync "github.com/iudanet/lingosync/internal/client/sync"
	"github.com/iudanet/lingosync/internal/models"
)

// errNotSignedIn подсказка для команд, которым нужен пользователь
var errNotSignedIn = errors.New("not signed in, run 'lingosync login' first")

func (c *Cli) requireUser(ctx context.Context) (string, error) {
	userID, ok := c.authService.UserID(ctx)
	if !ok {
		return "", errNotSignedIn
	}
	return userID, nil
}

func (c *Cli) runPush(ctx context.Context) error {
	userID, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	c.io.Println("Uploading local progress...")
	return c.report(c.syncService.SyncToCloud(ctx, userID))
}

func (c *Cli) runPull(ctx context.Context) error {
	userID, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	c.io.Println("Downloading progress from cloud...")
	res := c.syncService.SyncFromCloud(ctx, userID)
	if err := c.report(res); err != nil {
		return err
	}

	if res.Outcome == clientsync.OutcomeCompleted {
		c.io.Printf("Adopted from cloud: %d\n", res.Adopted)
		c.io.Printf("Merged locally:     %d\n", res.Merged)
		if res.Skipped > 0 {
			c.io.Printf("Skipped:            %d\n", res.Skipped)
		}
	}
	return nil
}

func (c *Cli) runPushKey(ctx context.Context, key string) error {
	syncKey, ok := models.ParseSyncKey(key)
	if !ok {
		return fmt.Errorf("%q is not a synced key", key)
	}

	userID, err := c.requireUser(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Uploading %s...\n", syncKey)
	return c.report(c.syncService.SyncKeyToCloud(ctx, userID, syncKey))
}

// report печатает итог операции; ошибкой считается только OutcomeFailed
func (c *Cli) report(res *clientsync.Result) error {
	switch res.Outcome {
	case clientsync.OutcomeCompleted:
		c.io.Printf("✓ Done in %s (%s)\n", res.Duration.Round(time.Millisecond), joinKeys(res.Keys))
	case clientsync.OutcomeNoop:
		c.io.Println("Nothing to sync")
	case clientsync.OutcomeSkipped:
		c.io.Println("Skipped")
	case clientsync.OutcomeRateLimited:
		c.io.Println("Too many sync requests, try again in a few seconds")
	case clientsync.OutcomeFailed:
		return fmt.Errorf("sync failed: %w", res.Err)
	}
	return nil
}

func joinKeys(keys []models.SyncKey) string {
	if len(keys) == 0 {
		return "no keys"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
