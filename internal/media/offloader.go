package media

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Alllfr/snap-journal/internal/store"
)

// batchSize bounds how many entries one offloader run rewrites.
const batchSize = 20

// Offloader moves inline data-URI media out of journal rows and into files
// under the storage root, rewriting each row to the relative path. Entries
// keep working either way; this only trims row size and lets media be served
// statically.
type Offloader struct {
	journals store.Journals
	storage  *Storage
	logger   *zap.SugaredLogger
}

func NewOffloader(journals store.Journals, storage *Storage, logger *zap.SugaredLogger) *Offloader {
	return &Offloader{journals: journals, storage: storage, logger: logger}
}

// Run offloads one batch. Failures on individual entries are logged and
// skipped so one bad payload cannot wedge the batch.
func (o *Offloader) Run(ctx context.Context) error {
	journals, err := o.journals.ListDataURIMedia(ctx, batchSize)
	if err != nil {
		return fmt.Errorf("failed to list entries with inline media: %w", err)
	}

	for _, j := range journals {
		path, err := o.storage.Persist(j.MediaPath)
		if err != nil {
			o.logger.Errorw("failed to offload media", "journal_id", j.ID, "error", err)
			continue
		}
		if err := o.journals.SetMediaPath(ctx, j.ID, path); err != nil {
			o.logger.Errorw("failed to rewrite media path", "journal_id", j.ID, "error", err)
			continue
		}
		o.logger.Infow("offloaded media", "journal_id", j.ID, "path", path)
	}
	return nil
}

// Start schedules Run on the given cron spec and returns the started cron so
// the caller can Stop it on shutdown.
func (o *Offloader) Start(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := o.Run(context.Background()); err != nil {
			o.logger.Errorw("media offload run failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid offload schedule %q: %w", spec, err)
	}
	c.Start()
	return c, nil
}
