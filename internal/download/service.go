package download

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/ytget/glb-fetcher/internal/model"
	"github.com/ytget/glb-fetcher/internal/viewer"
)

// Service runs resolve-and-download jobs, one at a time
type Service struct {
	resolver   Resolver
	fetcher    FileFetcher
	browser    BrowserOpener
	viewerName string
	viewerURL  string
	logger     *zap.Logger

	jobs      map[string]*model.Job
	jobsMutex sync.RWMutex
	active    *semaphore.Weighted
	busy      atomic.Bool
	wg        sync.WaitGroup

	callbackMutex sync.RWMutex
	onUpdate      func(model.Event) // callback for UI updates
}

// NewService creates a new job service. viewerName is used in messages,
// viewerURL is the page opened before and after each download.
func NewService(resolver Resolver, fetcher FileFetcher, browser BrowserOpener, viewerName, viewerURL string, logger *zap.Logger) *Service {
	return &Service{
		resolver:   resolver,
		fetcher:    fetcher,
		browser:    browser,
		viewerName: strings.ToLower(viewerName),
		viewerURL:  viewerURL,
		logger:     logger,
		jobs:       make(map[string]*model.Job),
		active:     semaphore.NewWeighted(1),
	}
}

// SetUpdateCallback sets the callback function for job events. It is called
// from worker goroutines.
func (s *Service) SetUpdateCallback(callback func(model.Event)) {
	s.callbackMutex.Lock()
	s.onUpdate = callback
	s.callbackMutex.Unlock()
}

// Start validates input and launches a job that saves into downloadDir. It
// returns ErrEmptyInput for blank input and ErrJobActive while another job is
// running. The returned job is a snapshot.
func (s *Service) Start(input, downloadDir string) (*model.Job, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, model.ErrEmptyInput
	}
	if !s.active.TryAcquire(1) {
		return nil, model.ErrJobActive
	}
	s.busy.Store(true)

	job := &model.Job{
		ID:        generateJobID(),
		Input:     input,
		Status:    model.JobStatusPending,
		StartedAt: time.Now(),
	}

	s.jobsMutex.Lock()
	s.jobs[job.ID] = job
	snapshot := *job
	s.jobsMutex.Unlock()

	s.logger.Info("job accepted", zap.String("job_id", job.ID), zap.String("input", input))

	s.wg.Add(1)
	go s.run(job, downloadDir)

	return &snapshot, nil
}

// GetJob returns a snapshot of a job by ID
func (s *Service) GetJob(id string) (*model.Job, bool) {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()
	job, exists := s.jobs[id]
	if !exists {
		return nil, false
	}
	snapshot := *job
	return &snapshot, true
}

// GetAllJobs returns snapshots of all jobs, oldest first
func (s *Service) GetAllJobs() []*model.Job {
	s.jobsMutex.RLock()
	jobs := make([]*model.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		snapshot := *job
		jobs = append(jobs, &snapshot)
	}
	s.jobsMutex.RUnlock()

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].StartedAt.Before(jobs[j].StartedAt)
	})
	return jobs
}

// IsBusy reports whether a job is running
func (s *Service) IsBusy() bool {
	return s.busy.Load()
}

// OpenViewer opens the viewer start page
func (s *Service) OpenViewer() error {
	return s.browser.OpenURL(s.viewerURL)
}

// Wait blocks until every started job has finished
func (s *Service) Wait() {
	s.wg.Wait()
}

// run executes one job. The finished event is sent after the slot is
// released so the UI can start the next job as soon as it sees it.
func (s *Service) run(job *model.Job, downloadDir string) {
	var err error
	defer s.wg.Done()
	defer func() {
		s.busy.Store(false)
		s.active.Release(1)
		s.notify(model.Event{JobID: job.ID, Kind: model.EventFinished, Err: err})
	}()

	err = s.execute(job, downloadDir)

	s.jobsMutex.Lock()
	job.FinishedAt = time.Now()
	if err != nil {
		job.Status = model.JobStatusFailed
		job.LastError = err.Error()
	} else {
		job.Status = model.JobStatusCompleted
	}
	s.jobsMutex.Unlock()

	if err != nil {
		s.logger.Warn("job failed", zap.String("job_id", job.ID), zap.Error(err))
		s.status(job.ID, "failed – see log.")
		s.log(job.ID, fmt.Sprintf("error – %v", err))
		return
	}
	s.logger.Info("job completed",
		zap.String("job_id", job.ID),
		zap.String("path", job.OutputPath),
		zap.String("elapsed", job.GetElapsedString()))
}

func (s *Service) execute(job *model.Job, downloadDir string) error {
	ctx := context.Background()
	logf := func(line string) { s.log(job.ID, line) }

	s.setStatus(job, model.JobStatusResolving)
	s.progress(job, 0)
	s.status(job.ID, "resolving link…")
	s.log(job.ID, "starting…")

	target, err := s.resolver.Resolve(ctx, job.Input, logf)
	if err != nil {
		return err
	}
	if target.IsZero() {
		return model.NewResolutionError(job.Input, "")
	}

	s.jobsMutex.Lock()
	job.Target = target
	s.jobsMutex.Unlock()
	s.log(job.ID, fmt.Sprintf("found glb url – %s", target.FileURL))

	s.log(job.ID, fmt.Sprintf("opening %s with detected model url…", s.viewerName))
	if err := s.browser.OpenURL(viewer.Link(s.viewerURL, target.FileURL)); err != nil {
		s.logger.Debug("viewer link not opened", zap.Error(err))
		s.log(job.ID, fmt.Sprintf("could not open %s with modelUrl: %v", s.viewerName, err))
	}

	outPath := filepath.Join(downloadDir, target.Filename)
	s.jobsMutex.Lock()
	job.OutputPath = outPath
	s.jobsMutex.Unlock()

	s.setStatus(job, model.JobStatusDownloading)
	s.log(job.ID, fmt.Sprintf("downloading to – %s", outPath))

	written, err := s.fetcher.Download(ctx, target.FileURL, outPath, func(percent int) {
		s.progress(job, percent)
	})
	s.jobsMutex.Lock()
	job.Written = written
	s.jobsMutex.Unlock()
	if err != nil {
		return err
	}

	s.log(job.ID, fmt.Sprintf("saved – %s (%s)", outPath, humanize.IBytes(uint64(written))))
	s.jobsMutex.RLock()
	name := job.GetDisplayName()
	s.jobsMutex.RUnlock()
	s.status(job.ID, fmt.Sprintf("download complete – %s", name))

	s.log(job.ID, fmt.Sprintf("next step – opening %s…", s.viewerName))
	if err := s.browser.OpenURL(s.viewerURL); err != nil {
		s.logger.Warn("viewer not opened", zap.Error(err))
		s.log(job.ID, fmt.Sprintf("could not open %s: %v", s.viewerName, err))
	}
	s.log(job.ID, fmt.Sprintf("in %s – click load and select the .glb from the downloads folder.", s.viewerName))
	s.status(job.ID, fmt.Sprintf("%s opened – please load the .glb you just downloaded.", s.viewerName))
	return nil
}

func (s *Service) setStatus(job *model.Job, status model.JobStatus) {
	s.jobsMutex.Lock()
	job.Status = status
	s.jobsMutex.Unlock()
}

func (s *Service) progress(job *model.Job, percent int) {
	s.jobsMutex.Lock()
	job.Percent = percent
	s.jobsMutex.Unlock()
	s.notify(model.Event{JobID: job.ID, Kind: model.EventProgress, Percent: percent})
}

func (s *Service) status(jobID, message string) {
	s.notify(model.Event{JobID: jobID, Kind: model.EventStatus, Message: message})
}

func (s *Service) log(jobID, line string) {
	s.notify(model.Event{JobID: jobID, Kind: model.EventLog, Message: line})
}

// notify calls the update callback if set
func (s *Service) notify(event model.Event) {
	s.callbackMutex.RLock()
	callback := s.onUpdate
	s.callbackMutex.RUnlock()
	if callback != nil {
		callback(event)
	}
}

// generateJobID generates a unique job ID
func generateJobID() string {
	return "job-" + uuid.NewString()
}
