package wallpaper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Wallpaper feed sources
const (
	Source360  = "360"
	SourceBing = "bing"

	// CountrySpotlight 作为 bing_country 的特殊值，切换到 spotlight 源
	CountrySpotlight = "spotlight"
)

const (
	default360Base    = "http://cdn.apc.360.cn"
	defaultPeapixBase = "https://peapix.com"
)

// Result is the outcome of one rotation attempt. OK=false means the feed
// was unreachable or empty; the caller keeps the previously configured
// wallpaper and the cookie index untouched (fail open).
type Result struct {
	URL       string
	NextIndex int
	OK        bool
}

// Rotator advances the per-client wallpaper rotation against a remote feed
type Rotator struct {
	client *http.Client
	log    *logrus.Entry

	// feed hosts, overridable in tests
	base360    string
	basePeapix string
}

// New creates a rotator with a bounded fetch timeout; the feed call sits
// on the hot render path, so a slow feed must not hang the page.
func New(timeout time.Duration) *Rotator {
	return &Rotator{
		client:     &http.Client{Timeout: timeout},
		log:        logrus.WithField("component", "wallpaper-rotator"),
		base360:    default360Base,
		basePeapix: defaultPeapixBase,
	}
}

type gallery360Response struct {
	Errno string `json:"errno"`
	Data  []struct {
		URL string `json:"url"`
	} `json:"data"`
}

type peapixItem struct {
	FullURL string `json:"fullUrl"`
	URL     string `json:"url"`
}

// Rotate fetches the configured feed and returns the next wallpaper URL
// for (currentIndex+1) mod feed length.
func (r *Rotator) Rotate(ctx context.Context, source, cid360, bingCountry string, currentIndex int) Result {
	switch source {
	case Source360:
		return r.rotate360(ctx, cid360, currentIndex)
	default:
		// bing 及其衍生 spotlight 源
		return r.rotateBing(ctx, bingCountry, currentIndex)
	}
}

func (r *Rotator) rotate360(ctx context.Context, cid string, currentIndex int) Result {
	if cid == "" {
		cid = "36"
	}
	apiURL := fmt.Sprintf("%s/index.php?c=WallPaper&a=getAppsByCategory&from=360chrome&cid=%s&start=0&count=8", r.base360, cid)

	body, ok := r.fetch(ctx, apiURL)
	if !ok {
		return Result{}
	}

	var resp gallery360Response
	if err := json.Unmarshal(body, &resp); err != nil {
		r.log.WithError(err).Warn("failed to decode 360 gallery response")
		return Result{}
	}
	if resp.Errno != "0" || len(resp.Data) == 0 {
		return Result{}
	}

	next := (currentIndex + 1) % len(resp.Data)
	target := resp.Data[next].URL
	if target == "" {
		return Result{}
	}
	// 360 源返回 http 图片地址，页面是 https，强制升级避免混合内容
	target = strings.Replace(target, "http://", "https://", 1)

	return Result{URL: target, NextIndex: next, OK: true}
}

func (r *Rotator) rotateBing(ctx context.Context, country string, currentIndex int) Result {
	var feedURL string
	if country == CountrySpotlight {
		feedURL = fmt.Sprintf("%s/spotlight/feed?n=7", r.basePeapix)
	} else {
		feedURL = fmt.Sprintf("%s/bing/feed?n=7&country=%s", r.basePeapix, country)
	}

	body, ok := r.fetch(ctx, feedURL)
	if !ok {
		return Result{}
	}

	var items []peapixItem
	if err := json.Unmarshal(body, &items); err != nil {
		r.log.WithError(err).Warn("failed to decode wallpaper feed")
		return Result{}
	}
	if len(items) == 0 {
		return Result{}
	}

	next := (currentIndex + 1) % len(items)
	target := items[next].FullURL
	if target == "" {
		target = items[next].URL
	}
	if target == "" {
		return Result{}
	}

	return Result{URL: target, NextIndex: next, OK: true}
}

func (r *Rotator) fetch(ctx context.Context, url string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		r.log.WithError(err).Warn("failed to build wallpaper feed request")
		return nil, false
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.WithError(err).Warn("wallpaper feed fetch failed")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.WithField("status", resp.StatusCode).Warn("wallpaper feed returned non-OK status")
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		r.log.WithError(err).Warn("failed to read wallpaper feed body")
		return nil, false
	}
	return body, true
}
