package level

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Talha991s/Babylon-Game/pkg/app"
	"github.com/Talha991s/Babylon-Game/pkg/player"
)

// ErrLoaderClosed is returned for loads requested after Cleanup
var ErrLoaderClosed = errors.New("level loader closed")

// Loader builds gameplay levels on a background worker. It satisfies
// app.AssetLoader.
type Loader struct {
	cfg Config
	log *zap.Logger

	jobs          chan loadJob
	stopWorker    chan struct{}
	workerStopped chan struct{}

	closedMutex sync.RWMutex
	closed      bool
}

// loadJob is one queued level build
type loadJob struct {
	ctx    context.Context
	scene  app.Scene
	handle *Handle
}

// Handle is the pending result of a Load
type Handle struct {
	done   chan struct{}
	assets *app.Assets
	err    error
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

func (h *Handle) finish(assets *app.Assets, err error) {
	h.assets = assets
	h.err = err
	close(h.done)
}

// Done is closed once the load has finished
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the load finishes or ctx is cancelled
func (h *Handle) Wait(ctx context.Context) (*app.Assets, error) {
	select {
	case <-h.done:
		return h.assets, h.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// NewLoader creates a loader and starts its worker
func NewLoader(cfg Config, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}

	l := &Loader{
		cfg:           cfg,
		log:           log,
		jobs:          make(chan loadJob, 4),
		stopWorker:    make(chan struct{}),
		workerStopped: make(chan struct{}),
	}

	go l.loadWorker()

	return l
}

// Load queues a level build into scene's world
func (l *Loader) Load(ctx context.Context, scene app.Scene) *Handle {
	h := newHandle()

	l.closedMutex.RLock()
	defer l.closedMutex.RUnlock()

	if l.closed {
		h.finish(nil, ErrLoaderClosed)
		return h
	}

	select {
	case l.jobs <- loadJob{ctx: ctx, scene: scene, handle: h}:
	case <-ctx.Done():
		h.finish(nil, ctx.Err())
	}

	return h
}

// LoadSceneAssets loads a level into scene and waits for it
func (l *Loader) LoadSceneAssets(ctx context.Context, scene app.Scene) (*app.Assets, error) {
	return l.Load(ctx, scene).Wait(ctx)
}

// loadWorker processes load jobs in the background
func (l *Loader) loadWorker() {
	defer close(l.workerStopped)

	for {
		select {
		case <-l.stopWorker:
			// fail whatever is still queued
			for {
				select {
				case job := <-l.jobs:
					job.handle.finish(nil, ErrLoaderClosed)
				default:
					return
				}
			}
		case job := <-l.jobs:
			assets, err := l.build(job.ctx, job.scene)
			job.handle.finish(assets, err)
		}
	}
}

// build fills scene's world with the level's colliders
func (l *Loader) build(ctx context.Context, scene app.Scene) (*app.Assets, error) {
	start := time.Now()

	if l.cfg.Latency > 0 {
		timer := time.NewTimer(l.cfg.Latency)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-l.stopWorker:
			return nil, ErrLoaderClosed
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grid := DefaultLayout(l.cfg)
	spans := MergeBoxes(grid)
	if len(spans) == 0 {
		return nil, fmt.Errorf("failed to build level for scene %s: no solid blocks", scene.Name())
	}

	w := scene.World()
	for i, span := range spans {
		mesh := w.NewMesh(fmt.Sprintf("%s-%d", span.Type, i), span.Box(grid), mgl32.Vec3{})
		mesh.SetMaterial(span.Type.Material())
	}

	// spawn on the surface at the centre of the level
	cx, cz := grid.SizeX/2, grid.SizeZ/2
	corner := grid.BlockToWorld(cx, 0, cz)
	spawn := mgl32.Vec3{corner.X(), grid.SurfaceHeight(cx, cz), corner.Z()}

	l.log.Info("level loaded",
		zap.String("scene", scene.Name()),
		zap.Int("colliders", len(spans)),
		zap.Int("blocks", len(grid.Blocks)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &app.Assets{
		Player:    player.DefaultTemplate(spawn),
		Materials: Materials(),
	}, nil
}

// Cleanup stops the worker goroutine. Pending and later loads fail with
// ErrLoaderClosed.
func (l *Loader) Cleanup() {
	l.closedMutex.Lock()
	if l.closed {
		l.closedMutex.Unlock()
		return
	}
	l.closed = true
	l.closedMutex.Unlock()

	close(l.stopWorker)
	<-l.workerStopped
}
