package preview

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	"craftpress/internal/customize"
	applog "craftpress/internal/log"
)

// Loader fetches and decodes remote element images. Mirrors the
// browser load policy: an anonymous cross-origin attempt first, then
// one plain retry before giving up.
type Loader struct {
	Client *http.Client
	// Origin sent on the first (cross-origin) attempt.
	Origin string
}

func NewLoader(origin string) *Loader {
	return &Loader{
		Client: &http.Client{Timeout: 10 * time.Second},
		Origin: origin,
	}
}

// Fetch loads one image. The first attempt declares our origin; some
// CDNs refuse such requests, so a failed attempt is retried once
// without it.
func (l *Loader) Fetch(ctx context.Context, src string) (image.Image, error) {
	img, err := l.fetch(ctx, src, true)
	if err == nil {
		return img, nil
	}
	return l.fetch(ctx, src, false)
}

func (l *Loader) fetch(ctx context.Context, src string, crossOrigin bool) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	if crossOrigin && l.Origin != "" {
		req.Header.Set("Origin", l.Origin)
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", src, resp.StatusCode)
	}
	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return img, nil
}

// FetchAll loads every image element independently and returns the
// loads that succeeded, keyed by element id. A failed load is logged
// and omitted; it never blocks sibling elements.
func (l *Loader) FetchAll(ctx context.Context, elements []customize.DesignElement) map[string]image.Image {
	type result struct {
		id  string
		img image.Image
		err error
	}

	ch := make(chan result)
	n := 0
	for _, el := range elements {
		if el.Kind != customize.KindImage || el.Src == "" {
			continue
		}
		n++
		go func(id, src string) {
			img, err := l.Fetch(ctx, src)
			ch <- result{id: id, img: img, err: err}
		}(el.ID, el.Src)
	}

	loaded := make(map[string]image.Image, n)
	for i := 0; i < n; i++ {
		r := <-ch
		if r.err != nil {
			applog.Error(nil, "preview.image.load", r.err, map[string]any{"element": r.id})
			continue
		}
		loaded[r.id] = r.img
	}
	return loaded
}

// Reconcile drops loads whose element is no longer present in the
// latest built element list. Stale results from superseded values are
// ignored this way instead of being cancelled mid-flight.
func Reconcile(elements []customize.DesignElement, loaded map[string]image.Image) map[string]image.Image {
	current := make(map[string]bool, len(elements))
	for _, el := range elements {
		current[el.ID] = true
	}
	out := make(map[string]image.Image, len(loaded))
	for id, img := range loaded {
		if current[id] {
			out[id] = img
		}
	}
	return out
}
