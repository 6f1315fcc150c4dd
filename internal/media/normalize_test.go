package media

import (
	"errors"
	"testing"
)

func TestNormalizeStructuredShape(t *testing.T) {
	r := NewResolver("http://srv")
	body := []byte(`{
		"folders": [{"name": "2023", "path": "/2023"}, {"name": "2024", "path": "/2024"}],
		"photos": [{"name": "a.jpg", "thumb": "/api/thumb/a.jpg", "full": "/api/photo/a.jpg"}],
		"videos": [{"fileName": "v.mp4", "full": "/api/video/v.mp4", "poster": "/api/vthumb/v.jpg"}]
	}`)

	l, err := Normalize(body, r, "tok")
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Folders) != 2 || len(l.Photos) != 1 || len(l.Videos) != 1 {
		t.Fatalf("got %d/%d/%d folders/photos/videos", len(l.Folders), len(l.Photos), len(l.Videos))
	}
	if l.Folders[0].Name != "2023" || l.Folders[1].Path != "/2024" {
		t.Errorf("folder order not preserved: %+v", l.Folders)
	}
	p := l.Photos[0]
	if p.ThumbURL != "http://srv/api/thumb/a.jpg?token=tok" {
		t.Errorf("photo thumb = %q", p.ThumbURL)
	}
	if p.FullURL != "http://srv/api/photo/a.jpg?token=tok" {
		t.Errorf("photo full = %q", p.FullURL)
	}
	v := l.Videos[0]
	if v.Name != "v.mp4" {
		t.Errorf("video name fallback to fileName failed: %q", v.Name)
	}
	if v.ThumbURL != "http://srv/api/vthumb/v.jpg?token=tok" {
		t.Errorf("video thumb = %q", v.ThumbURL)
	}
	if v.WatchURL != "http://srv/watch/v.mp4?token=tok" {
		t.Errorf("watch URL = %q", v.WatchURL)
	}
}

func TestNormalizeMissingKeysDefaultEmpty(t *testing.T) {
	l, err := Normalize([]byte(`{"photos": []}`), NewResolver("http://srv"), "")
	if err != nil {
		t.Fatal(err)
	}
	if !l.Empty() {
		t.Errorf("expected empty listing, got %+v", l)
	}
}

func TestNormalizeFlatShape(t *testing.T) {
	r := NewResolver("http://srv")
	// Legacy flat mode: a bare array of photo records with only "full".
	body := []byte(`[{"name": "a.jpg", "full": "/api/photo/a.jpg"}, {"name": "b.jpg", "full": "/api/photo/b.jpg"}]`)

	l, err := Normalize(body, r, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Folders) != 0 || len(l.Videos) != 0 {
		t.Fatalf("flat shape produced folders/videos: %+v", l)
	}
	if len(l.Photos) != 2 {
		t.Fatalf("got %d photos, want 2", len(l.Photos))
	}
	// With only "full" present, the thumb falls back to the same URL.
	for i, p := range l.Photos {
		if p.ThumbURL != p.FullURL {
			t.Errorf("photo %d: thumb %q != full %q", i, p.ThumbURL, p.FullURL)
		}
	}
	if l.Photos[0].Name != "a.jpg" || l.Photos[1].Name != "b.jpg" {
		t.Errorf("order not preserved: %+v", l.Photos)
	}
}

func TestNormalizeUnrecognizedShape(t *testing.T) {
	r := NewResolver("http://srv")
	for _, body := range []string{`"just a string"`, `42`, ``, `   `} {
		_, err := Normalize([]byte(body), r, "")
		if !errors.Is(err, ErrUnrecognizedShape) {
			t.Errorf("Normalize(%q) err = %v, want ErrUnrecognizedShape", body, err)
		}
	}
	// Truly malformed JSON fails loudly too, but as a decode error.
	if _, err := Normalize([]byte(`{"photos": [`), r, ""); err == nil {
		t.Error("malformed JSON did not error")
	}
}

func TestNormalizeDegradedRecords(t *testing.T) {
	r := NewResolver("http://srv")
	body := []byte(`{
		"photos": [{}],
		"videos": [{"name": "clip", "full": "/api/video/c.mp4"}]
	}`)

	l, err := Normalize(body, r, "")
	if err != nil {
		t.Fatal(err)
	}
	// An empty record yields empty fields, never an error.
	p := l.Photos[0]
	if p.Name != "" || p.ThumbURL != "" || p.FullURL != "" {
		t.Errorf("empty record not degraded: %+v", p)
	}
	// And still gets a stable, index-derived key.
	if p.Key != "photo#0" {
		t.Errorf("fallback key = %q", p.Key)
	}
	// A video with no thumb source keeps an empty ThumbURL (placeholder).
	if l.Videos[0].ThumbURL != "" {
		t.Errorf("video thumb = %q, want empty", l.Videos[0].ThumbURL)
	}
}

func TestNormalizeKeysStable(t *testing.T) {
	r := NewResolver("http://srv")
	body := []byte(`{"photos": [{"full": "/api/photo/a.jpg"}, {}]}`)

	first, err := Normalize(body, r, "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Normalize(body, r, "")
	if err != nil {
		t.Fatal(err)
	}
	for i := range first.Photos {
		if first.Photos[i].Key != second.Photos[i].Key {
			t.Errorf("photo %d key unstable: %q vs %q", i, first.Photos[i].Key, second.Photos[i].Key)
		}
	}
	// Keyed from the raw source field, not the resolved URL.
	if first.Photos[0].Key != "/api/photo/a.jpg" {
		t.Errorf("photo key = %q", first.Photos[0].Key)
	}
}
