package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// maxConcurrentLoads bounds decode and download work.
const maxConcurrentLoads = 6

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ImageCache provides disk + memory caching for product artwork. Sources are
// either http(s) URLs or paths relative to the assets directory.
type ImageCache struct {
	assetsDir string
	cacheDir  string
	memory    sync.Map // src -> image.Image
	loading   sync.Map // src -> *loadEntry (in-flight dedup with waiters)
	sem       *semaphore.Weighted
	log       *zap.Logger
}

// loadEntry tracks in-flight loads and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(image.Image, error)
	done      bool
	img       image.Image
	err       error
}

// NewImageCache creates an image cache reading local artwork from assetsDir
// and caching downloads under cacheDir.
func NewImageCache(assetsDir, cacheDir string, log *zap.Logger) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create image cache dir: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageCache{
		assetsDir: assetsDir,
		cacheDir:  cacheDir,
		sem:       semaphore.NewWeighted(maxConcurrentLoads),
		log:       log,
	}, nil
}

// Get returns a cached image if available, or nil.
func (ic *ImageCache) Get(src string) image.Image {
	if v, ok := ic.memory.Load(src); ok {
		return v.(image.Image)
	}
	return nil
}

// LoadAsync starts loading src in the background. The callback receives the
// image or the load error and may be called from another goroutine.
func (ic *ImageCache) LoadAsync(src string, callback func(image.Image, error)) {
	if v, ok := ic.memory.Load(src); ok {
		callback(v.(image.Image), nil)
		return
	}

	entry := &loadEntry{}
	entry.callbacks = append(entry.callbacks, callback)

	if existing, loaded := ic.loading.LoadOrStore(src, entry); loaded {
		existingEntry := existing.(*loadEntry)
		existingEntry.mu.Lock()
		if existingEntry.done {
			img, err := existingEntry.img, existingEntry.err
			existingEntry.mu.Unlock()
			callback(img, err)
			return
		}
		existingEntry.callbacks = append(existingEntry.callbacks, callback)
		existingEntry.mu.Unlock()
		return
	}

	go func() {
		var img image.Image
		err := ic.sem.Acquire(context.Background(), 1)
		if err == nil {
			img, err = ic.Load(src)
			ic.sem.Release(1)
		}

		if err != nil {
			ic.log.Warn("image load failed", zap.String("src", src), zap.Error(err))
		} else {
			ic.memory.Store(src, img)
		}

		entry.mu.Lock()
		entry.done, entry.img, entry.err = true, img, err
		ic.loading.Delete(src)
		cbs := make([]func(image.Image, error), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(img, err)
		}
	}()
}

// Load reads and decodes src synchronously, without touching the memory cache.
func (ic *ImageCache) Load(src string) (image.Image, error) {
	if isRemote(src) {
		return ic.loadRemote(src)
	}
	return ic.loadLocal(src)
}

// localPath resolves src against the assets directory. A leading slash is
// the site root, not the filesystem root; only file:// names an OS path.
func (ic *ImageCache) localPath(src string) string {
	if p, ok := strings.CutPrefix(src, "file://"); ok {
		return filepath.FromSlash(p)
	}
	return filepath.Join(ic.assetsDir, filepath.FromSlash(strings.TrimPrefix(src, "/")))
}

func (ic *ImageCache) loadLocal(src string) (image.Image, error) {
	path := ic.localPath(src)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func (ic *ImageCache) loadRemote(url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	// Try disk cache first
	if f, err := os.Open(diskPath); err == nil {
		img, _, err := image.Decode(f)
		f.Close()
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}

	return img, nil
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// ClearDisk removes all downloaded images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
