package cache

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 0xB8, G: 0x8E, B: 0x2F, A: 0xFF})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newCache(t *testing.T) (*ImageCache, string) {
	t.Helper()
	assets := t.TempDir()
	ic, err := NewImageCache(assets, filepath.Join(t.TempDir(), "cache"), zaptest.NewLogger(t))
	require.NoError(t, err)
	return ic, assets
}

type result struct {
	img image.Image
	err error
}

func await(t *testing.T, ch <-chan result) result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for image")
		return result{}
	}
}

func TestLoadAsync_LocalAsset(t *testing.T) {
	ic, assets := newCache(t)
	require.NoError(t, os.MkdirAll(filepath.Join(assets, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "images", "lolito.png"), pngBytes(t, 4, 3), 0o644))

	ch := make(chan result, 1)
	ic.LoadAsync("/images/lolito.png", func(img image.Image, err error) { ch <- result{img, err} })

	r := await(t, ch)
	require.NoError(t, r.err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), r.img.Bounds())

	cached := ic.Get("/images/lolito.png")
	require.NotNil(t, cached)

	// Served from memory synchronously the second time.
	var got image.Image
	ic.LoadAsync("/images/lolito.png", func(img image.Image, err error) { got = img })
	assert.Same(t, cached, got)
}

func TestLocalPath(t *testing.T) {
	ic, assets := newCache(t)
	abs := filepath.Join(t.TempDir(), "respira.png")

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"site root", "/images/lolito.png", filepath.Join(assets, "images", "lolito.png")},
		{"relative", "images/lolito.png", filepath.Join(assets, "images", "lolito.png")},
		{"file url", "file://" + filepath.ToSlash(abs), abs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ic.localPath(tt.src))
		})
	}
}

func TestLoad_FileURL(t *testing.T) {
	ic, _ := newCache(t)
	abs := filepath.Join(t.TempDir(), "leviosa.png")
	require.NoError(t, os.WriteFile(abs, pngBytes(t, 2, 5), 0o644))

	img, err := ic.Load("file://" + filepath.ToSlash(abs))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 5), img.Bounds())
}

func TestLoadAsync_MissingAssetReportsError(t *testing.T) {
	ic, _ := newCache(t)

	ch := make(chan result, 1)
	ic.LoadAsync("images/missing.png", func(img image.Image, err error) { ch <- result{img, err} })

	r := await(t, ch)
	assert.ErrorIs(t, r.err, os.ErrNotExist)
	assert.Nil(t, r.img)
	assert.Nil(t, ic.Get("images/missing.png"))
}

func TestLoad_CorruptAsset(t *testing.T) {
	ic, assets := newCache(t)
	require.NoError(t, os.WriteFile(filepath.Join(assets, "bad.png"), []byte("not an image"), 0o644))

	_, err := ic.Load("bad.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestLoad_RemoteUsesDiskCache(t *testing.T) {
	body := pngBytes(t, 2, 2)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	defer srv.Close()

	ic, _ := newCache(t)
	url := srv.URL + "/syltherine.png"

	img, err := ic.Load(url)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())

	_, err = os.Stat(ic.diskPath(url))
	require.NoError(t, err)

	_, err = ic.Load(url)
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load(), "second load is served from disk")

	_, err = ic.Load(srv.URL + "/missing.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	require.NoError(t, ic.ClearDisk())
	_, err = os.Stat(ic.CacheDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAsync_DedupsInFlight(t *testing.T) {
	release := make(chan struct{})
	var hits atomic.Int32
	body := pngBytes(t, 1, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		w.Write(body)
	}))
	defer srv.Close()

	ic, _ := newCache(t)
	url := srv.URL + "/respira.png"

	const waiters = 5
	var wg sync.WaitGroup
	wg.Add(waiters)
	errs := make(chan error, waiters)
	for i := 0; i < waiters; i++ {
		ic.LoadAsync(url, func(_ image.Image, err error) {
			errs <- err
			wg.Done()
		})
	}
	close(release)

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callbacks")
	}

	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestIsRemote(t *testing.T) {
	assert.True(t, isRemote("https://cdn.example.com/a.png"))
	assert.True(t, isRemote("http://localhost/a.png"))
	assert.False(t, isRemote("images/a.png"))
	assert.False(t, isRemote("/images/a.png"))
}
