package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ggpradas-dev/blog-project/internal/infrastructure/storage"
	"github.com/ggpradas-dev/blog-project/internal/logger"
	"github.com/ggpradas-dev/blog-project/internal/metrics"
	"github.com/ggpradas-dev/blog-project/internal/repository"
)

// Reconciler periodically cross-checks article image references against the
// blob store. Article and blob writes are not transactional, so a crash or
// partial failure can leave an orphaned blob (stored but unreferenced) or a
// dangling reference (referenced but not stored). The sweep surfaces both
// and can remove orphans.
type Reconciler struct {
	repo          repository.ArticleRepository
	images        storage.ImageStorage
	deleteOrphans bool

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// orphanGracePeriod protects in-flight image replacements: a freshly
// uploaded blob is unreferenced until the article row is updated, so blobs
// younger than this are reported but never deleted.
const orphanGracePeriod = 15 * time.Minute

// SweepResult summarizes one reconciliation pass.
type SweepResult struct {
	// OrphanedBlobs are stored blobs no article references.
	OrphanedBlobs []string
	// DanglingRefs are image references without a stored blob.
	DanglingRefs []string
	// DeletedOrphans counts orphans removed during this pass.
	DeletedOrphans int
}

// NewReconciler creates a new Reconciler. With deleteOrphans set, sweeps
// remove unreferenced blobs instead of only reporting them.
func NewReconciler(repo repository.ArticleRepository, images storage.ImageStorage, deleteOrphans bool) *Reconciler {
	return &Reconciler{
		repo:          repo,
		images:        images,
		deleteOrphans: deleteOrphans,
		stopChan:      make(chan struct{}),
	}
}

// Start runs a sweep every interval until Stop is called.
func (r *Reconciler) Start(interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), interval)
				if _, err := r.Sweep(ctx); err != nil {
					logger.Error("reconciliation sweep failed",
						slog.String("error", err.Error()))
				}
				cancel()
			case <-r.stopChan:
				return
			}
		}
	}()
}

// Stop halts the periodic sweep and waits for an in-flight pass to finish.
func (r *Reconciler) Stop() {
	close(r.stopChan)
	r.wg.Wait()
}

// Sweep runs one reconciliation pass.
func (r *Reconciler) Sweep(ctx context.Context) (SweepResult, error) {
	var result SweepResult

	refs, err := r.repo.ImageRefs(ctx)
	if err != nil {
		metrics.ReconcilerSweepsTotal.WithLabelValues("error").Inc()
		return result, err
	}

	blobs, err := r.images.List(ctx)
	if err != nil {
		metrics.ReconcilerSweepsTotal.WithLabelValues("error").Inc()
		return result, err
	}

	referenced := make(map[string]bool, len(refs))
	for _, ref := range refs {
		referenced[ref] = true
	}
	stored := make(map[string]bool, len(blobs))
	for _, blob := range blobs {
		stored[blob] = true
	}

	for _, blob := range blobs {
		if !referenced[blob] {
			result.OrphanedBlobs = append(result.OrphanedBlobs, blob)
		}
	}
	for _, ref := range refs {
		if !stored[ref] {
			result.DanglingRefs = append(result.DanglingRefs, ref)
		}
	}

	if r.deleteOrphans {
		for _, blob := range result.OrphanedBlobs {
			if uploaded, ok := uploadTime(blob); ok && time.Since(uploaded) < orphanGracePeriod {
				continue
			}
			if err := r.images.Delete(ctx, blob); err != nil {
				logger.Warn("failed to delete orphaned blob",
					slog.String("blob", blob),
					slog.String("error", err.Error()))
				continue
			}
			result.DeletedOrphans++
		}
	}

	metrics.ReconcilerOrphanedBlobs.Set(float64(len(result.OrphanedBlobs)))
	metrics.ReconcilerDanglingRefs.Set(float64(len(result.DanglingRefs)))
	metrics.ReconcilerSweepsTotal.WithLabelValues("success").Inc()

	if len(result.OrphanedBlobs) > 0 || len(result.DanglingRefs) > 0 {
		logger.Warn("article images out of sync with blob store",
			slog.Int("orphaned_blobs", len(result.OrphanedBlobs)),
			slog.Int("dangling_references", len(result.DanglingRefs)),
			slog.Int("deleted_orphans", result.DeletedOrphans))
	}

	return result, nil
}

// uploadTime extracts the timestamp a blob name encodes
// (article_<unix-millis>_<filename>).
func uploadTime(name string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(name, "article_")
	if !ok {
		return time.Time{}, false
	}
	millis, _, ok := strings.Cut(rest, "_")
	if !ok {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}
