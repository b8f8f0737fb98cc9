package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/iudanet/lingosync/internal/client/storage"
	"github.com/iudanet/lingosync/internal/models"
)

func (c *Cli) runKeys(ctx context.Context) error {
	stored, err := c.local.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list local keys: %w", err)
	}

	tw := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KEY\tSTRATEGY\tLOCAL")

	for _, key := range models.AllSyncKeys() {
		state := "-"
		if slices.Contains(stored, string(key)) {
			state = "stored"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", key, key.Strategy(), state)
	}

	// ключи, которые есть локально, но не синхронизируются
	for _, key := range stored {
		if _, ok := models.ParseSyncKey(key); !ok {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", key, "local only", "stored")
		}
	}

	return tw.Flush()
}

func (c *Cli) runGet(ctx context.Context, key string) error {
	raw, err := c.local.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return fmt.Errorf("no local value for %q", key)
		}
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		// испорченное значение показываем как есть
		c.io.Printf("%s\n", raw)
		return nil
	}
	c.io.Printf("%s\n", pretty.Bytes())
	return nil
}

func (c *Cli) runSave(ctx context.Context, key, value string) error {
	raw := []byte(value)
	if !json.Valid(raw) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}

	syncKey, synced := models.ParseSyncKey(key)
	if synced {
		if _, err := models.Decode(syncKey, raw); err != nil {
			return fmt.Errorf("invalid value for %q: %w", key, err)
		}
	}

	// обработчик очереди нужен только на время save
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- c.syncService.Run(runCtx) }()
	defer func() {
		cancel()
		<-done
	}()

	if err := c.syncService.SaveAndSync(ctx, key, raw); err != nil {
		return err
	}
	c.io.Printf("✓ Saved %s locally\n", key)

	if !synced {
		c.io.Printf("%q is not a synced key, it stays on this device\n", key)
		return nil
	}

	flushCtx, flushCancel := context.WithTimeout(ctx, c.flushTimeout)
	flushErr := c.syncService.Flush(flushCtx)
	flushCancel()

	st := c.syncService.Stats()
	switch {
	case flushErr != nil:
		c.io.Printf("Upload still pending after %s, it will be sent with the next 'lingosync push'\n", c.flushTimeout)
	case st.Dropped > 0:
		c.io.Println("Upload queue is full, run 'lingosync push' later")
	case st.Enqueued == 0:
		c.io.Println("Not signed in, saved on this device only")
	case st.Completed > 0:
		c.io.Println("✓ Uploaded to cloud")
	case st.RateLimited > 0:
		c.io.Println("Upload postponed by rate limiter, run 'lingosync push' later")
	case st.Failed > 0:
		c.io.Printf("Upload failed: %s (local value kept)\n", st.LastError)
	}

	return nil
}
