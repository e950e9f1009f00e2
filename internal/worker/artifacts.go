// Package worker persists rendered map documents in the background so
// request handling never waits on disk.
package worker

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Artifact is one rendered map document to persist.
type Artifact struct {
	Name string // file name without extension
	HTML string
}

// ArtifactPool writes map documents to a directory from a bounded
// queue. Persistence is best-effort: a full queue drops the artifact
// and a write failure only logs.
type ArtifactPool struct {
	dir  string
	jobs chan Artifact
	wg   sync.WaitGroup
	log  *zap.Logger
}

// NewArtifactPool creates a pool writing into dir with the given queue
// size.
func NewArtifactPool(dir string, queueSize int, log *zap.Logger) *ArtifactPool {
	if queueSize < 1 {
		queueSize = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ArtifactPool{
		dir:  dir,
		jobs: make(chan Artifact, queueSize),
		log:  log,
	}
}

// Start launches the worker goroutines.
func (p *ArtifactPool) Start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.write(job)
			}
		}()
	}
}

// Stop closes the queue and drains pending writes.
func (p *ArtifactPool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Submit queues an artifact without blocking.
func (p *ArtifactPool) Submit(a Artifact) {
	select {
	case p.jobs <- a:
	default:
		p.log.Warn("dropping map artifact, queue full", zap.String("name", a.Name))
	}
}

func (p *ArtifactPool) write(a Artifact) {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		p.log.Warn("create artifact dir failed", zap.String("dir", p.dir), zap.Error(err))
		return
	}

	path := filepath.Join(p.dir, a.Name+".html")
	if err := os.WriteFile(path, []byte(a.HTML), 0o644); err != nil {
		p.log.Warn("write map artifact failed", zap.String("path", path), zap.Error(err))
		return
	}

	p.log.Debug("saved map artifact", zap.String("path", path))
}
