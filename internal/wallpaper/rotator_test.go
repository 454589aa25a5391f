package wallpaper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestRotator(server *httptest.Server) *Rotator {
	r := New(2 * time.Second)
	r.base360 = server.URL
	r.basePeapix = server.URL
	return r
}

func TestRotate360(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("cid"); got != "26" {
			t.Errorf("Expected cid=26, got %q", got)
		}
		w.Write([]byte(`{"errno":"0","data":[{"url":"http://img.example.com/a.jpg"},{"url":"http://img.example.com/b.jpg"}]}`))
	}))
	defer server.Close()

	res := newTestRotator(server).Rotate(context.Background(), Source360, "26", "", -1)

	if !res.OK {
		t.Fatal("Expected rotation to succeed")
	}
	if res.NextIndex != 0 {
		t.Errorf("First rotation should land on index 0, got %d", res.NextIndex)
	}
	if res.URL != "https://img.example.com/a.jpg" {
		t.Errorf("Expected https-forced URL, got %q", res.URL)
	}
}

func TestRotate360_ErrnoNotZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errno":"1","data":[{"url":"http://x/a.jpg"}]}`))
	}))
	defer server.Close()

	if res := newTestRotator(server).Rotate(context.Background(), Source360, "", "", -1); res.OK {
		t.Error("Non-zero errno must fail open")
	}
}

func TestRotateBing_PrefersFullURLAndWraps(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("country"); got != "cn" {
			t.Errorf("Expected country=cn, got %q", got)
		}
		w.Write([]byte(`[{"fullUrl":"https://p/full0.jpg","url":"https://p/0.jpg"},{"url":"https://p/1.jpg"}]`))
	}))
	defer server.Close()

	rot := newTestRotator(server)

	res := rot.Rotate(context.Background(), SourceBing, "", "cn", -1)
	if !res.OK || res.URL != "https://p/full0.jpg" || res.NextIndex != 0 {
		t.Errorf("Expected fullUrl of item 0, got %+v", res)
	}

	// fullUrl 缺失时回退 url；索引按列表长度回绕
	res = rot.Rotate(context.Background(), SourceBing, "", "cn", 0)
	if !res.OK || res.URL != "https://p/1.jpg" || res.NextIndex != 1 {
		t.Errorf("Expected url of item 1, got %+v", res)
	}

	res = rot.Rotate(context.Background(), SourceBing, "", "cn", 1)
	if !res.OK || res.NextIndex != 0 {
		t.Errorf("Index should wrap around to 0, got %+v", res)
	}
}

func TestRotateBing_Spotlight(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[{"fullUrl":"https://p/s.jpg"}]`))
	}))
	defer server.Close()

	res := newTestRotator(server).Rotate(context.Background(), SourceBing, "", CountrySpotlight, -1)
	if !res.OK {
		t.Fatal("Expected spotlight rotation to succeed")
	}
	if gotPath != "/spotlight/feed" {
		t.Errorf("Expected spotlight feed path, got %q", gotPath)
	}
}

func TestRotate_FailsOpen(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"http 500", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"empty list", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}},
		{"invalid json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			res := newTestRotator(server).Rotate(context.Background(), SourceBing, "", "cn", 2)
			if res.OK {
				t.Error("Expected fail-open result")
			}
		})
	}
}

func TestRotate_UnreachableFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // 立即关掉，模拟网络失败

	res := newTestRotator(server).Rotate(context.Background(), SourceBing, "", "cn", -1)
	if res.OK {
		t.Error("Network failure must fail open")
	}
}
