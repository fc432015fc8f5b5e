package layout

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"explosig/api/models"
	"explosig/api/models/constants"
	c "explosig/api/models/constants/category"
	"explosig/api/models/dtos"
	"explosig/api/models/reference"
)

type (
	LayoutService struct {
		Initialized bool
		Config      *models.Config
		Reference   *reference.Table

		scheduler *gocron.Scheduler

		mu     sync.RWMutex
		latest *dtos.LayoutAuditReport
	}
)

func NewLayoutService(cfg *models.Config, ref *reference.Table) *LayoutService {
	ls := &LayoutService{
		Initialized: false,
		Config:      cfg,
		Reference:   ref,
	}

	ls.Init()

	return ls
}

func (ls *LayoutService) Init() {
	// initialization if necessary
	if ls.Initialized {
		return
	}

	if ls.Config.Api.AuditEnabled {
		// - periodically check that the processed-data tree
		//   the pipeline reads and writes is in place ;
		//   nothing is ever created or removed here
		s := gocron.NewScheduler(time.UTC)

		_, err := s.Every(1).Days().At(ls.Config.Api.AuditAt).Do(func() {
			fmt.Printf("[%s] - Running processed-data layout audit..\n", time.Now())
			if _, auditErr := ls.Audit(context.Background()); auditErr != nil {
				fmt.Printf("[%s] - Error auditing layout : %v..\n", time.Now(), auditErr)
			}
		})
		if err != nil {
			fmt.Printf("[%s] - Unable to schedule layout audit at %q : %v\n", time.Now(), ls.Config.Api.AuditAt, err)
		} else {
			s.StartAsync()
			ls.scheduler = s
		}
	}

	ls.Initialized = true
	fmt.Println("Layout Service Initialized ..")
}

// Stop halts the audit scheduler, if one is running.
func (ls *LayoutService) Stop() {
	if ls.scheduler != nil {
		ls.scheduler.Stop()
	}
}

// Audit stats every category directory and both signature manifests
// under the configured data root and stores the resulting report.
func (ls *LayoutService) Audit(ctx context.Context) (dtos.LayoutAuditReport, error) {
	report := dtos.LayoutAuditReport{
		Id:        uuid.New(),
		Timestamp: time.Now(),
		DataRoot:  ls.Config.Api.DataRoot,
	}

	categories := c.All()
	report.Directories = make([]dtos.LayoutAuditEntry, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		i, category := i, category
		g.Go(func() error {
			entry, err := ls.auditDirectory(gctx, category)
			if err != nil {
				return err
			}
			report.Directories[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return dtos.LayoutAuditReport{}, err
	}

	sigsDir, err := ls.Reference.CategoryDirectory(c.Signatures)
	if err != nil {
		return dtos.LayoutAuditReport{}, err
	}
	for _, filename := range []string{
		ls.Reference.SignatureManifestFilename(),
		ls.Reference.ActiveSignatureManifestFilename(),
	} {
		report.Manifests = append(report.Manifests, ls.stat(sigsDir+"/"+filename, false))
	}

	report.Complete = true
	for _, entry := range append(append([]dtos.LayoutAuditEntry{}, report.Directories...), report.Manifests...) {
		if !entry.Present {
			report.Complete = false
			fmt.Printf("[%s] - Layout audit : %s missing (%s)\n", time.Now(), entry.Path, entry.Message)
		}
	}

	ls.mu.Lock()
	ls.latest = &report
	ls.mu.Unlock()

	return report, nil
}

func (ls *LayoutService) auditDirectory(ctx context.Context, category constants.Category) (dtos.LayoutAuditEntry, error) {
	if err := ctx.Err(); err != nil {
		return dtos.LayoutAuditEntry{}, err
	}

	dir, err := ls.Reference.CategoryDirectory(category)
	if err != nil {
		return dtos.LayoutAuditEntry{}, err
	}

	entry := ls.stat(dir, true)
	entry.Category = category
	return entry, nil
}

func (ls *LayoutService) stat(relativePath string, wantDir bool) dtos.LayoutAuditEntry {
	entry := dtos.LayoutAuditEntry{Path: relativePath}

	info, err := os.Stat(filepath.Join(ls.Config.Api.DataRoot, filepath.FromSlash(relativePath)))
	switch {
	case err != nil:
		entry.Message = err.Error()
	case wantDir && !info.IsDir():
		entry.Message = "not a directory"
	case !wantDir && info.IsDir():
		entry.Message = "is a directory"
	default:
		entry.Present = true
	}
	return entry
}

// LatestReport returns a copy of the most recent audit, if any.
func (ls *LayoutService) LatestReport() (dtos.LayoutAuditReport, bool) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	if ls.latest == nil {
		return dtos.LayoutAuditReport{}, false
	}

	report := *ls.latest
	report.Directories = append([]dtos.LayoutAuditEntry(nil), ls.latest.Directories...)
	report.Manifests = append([]dtos.LayoutAuditEntry(nil), ls.latest.Manifests...)
	return report, true
}
