package media

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedShape is returned when the album response is valid JSON but
// neither of the two legal top-level shapes: a bare array of photo records,
// or an object with optional folders/photos/videos arrays.
var ErrUnrecognizedShape = errors.New("unrecognized album response shape")

// rawRecord is the union of every field spelling the server has ever used
// for a photo, video, or folder record. Individual deployments populate an
// arbitrary subset; the fallback chains below pick the first present value.
type rawRecord struct {
	Name      string `json:"name"`
	FileName  string `json:"fileName"`
	Path      string `json:"path"`
	Thumb     string `json:"thumb"`
	Thumbnail string `json:"thumbnail"`
	Poster    string `json:"poster"`
	Full      string `json:"full"`
	URL       string `json:"url"`
	Src       string `json:"src"`
}

// rawListing is the structured response shape. Any of the three arrays may
// be absent, which means empty.
type rawListing struct {
	Folders []rawRecord `json:"folders"`
	Photos  []rawRecord `json:"photos"`
	Videos  []rawRecord `json:"videos"`
}

// Normalize parses one album response body into a canonical Listing.
//
// The server answers in one of two shapes: a bare ordered array of photo
// records (legacy flat mode), or a structured {folders, photos, videos}
// object. Shape detection is explicit; anything else fails with
// ErrUnrecognizedShape rather than degrading to empty collections.
// Individual records degrade instead: a missing field becomes an empty
// string or a placeholder, never an error, so one malformed record cannot
// sink the folder.
func Normalize(data []byte, r *Resolver, token string) (Listing, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case len(trimmed) == 0:
		return Listing{}, fmt.Errorf("empty album response: %w", ErrUnrecognizedShape)
	case trimmed[0] == '[':
		var records []rawRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return Listing{}, fmt.Errorf("decoding flat album response: %w", err)
		}
		return Listing{Photos: normalizePhotos(records, r, token)}, nil
	case trimmed[0] == '{':
		var raw rawListing
		if err := json.Unmarshal(data, &raw); err != nil {
			return Listing{}, fmt.Errorf("decoding album response: %w", err)
		}
		return Listing{
			Folders: normalizeFolders(raw.Folders),
			Photos:  normalizePhotos(raw.Photos, r, token),
			Videos:  normalizeVideos(raw.Videos, r, token),
		}, nil
	default:
		return Listing{}, ErrUnrecognizedShape
	}
}

func normalizeFolders(records []rawRecord) []Folder {
	if len(records) == 0 {
		return nil
	}
	folders := make([]Folder, 0, len(records))
	for _, rec := range records {
		// Names stay raw here; percent-decoding happens at display time
		// so equality and navigation keep working on the wire values.
		folders = append(folders, Folder{
			Name: rec.Name,
			Path: rec.Path,
		})
	}
	return folders
}

func normalizePhotos(records []rawRecord, r *Resolver, token string) []Photo {
	if len(records) == 0 {
		return nil
	}
	photos := make([]Photo, 0, len(records))
	for i, rec := range records {
		photos = append(photos, Photo{
			Name:     firstNonEmpty(rec.Name, rec.FileName),
			ThumbURL: r.Resolve(firstNonEmpty(rec.Thumb, rec.Thumbnail, rec.URL, rec.Full), token),
			FullURL:  r.Resolve(firstNonEmpty(rec.Full, rec.URL, rec.Src, rec.Thumb), token),
			Key:      recordKey("photo", i, rec.Full, rec.Thumb, rec.URL, rec.Name),
		})
	}
	return photos
}

func normalizeVideos(records []rawRecord, r *Resolver, token string) []Video {
	if len(records) == 0 {
		return nil
	}
	videos := make([]Video, 0, len(records))
	for i, rec := range records {
		full := r.Resolve(firstNonEmpty(rec.Full, rec.URL, rec.Src), token)
		videos = append(videos, Video{
			Name: firstNonEmpty(rec.Name, rec.FileName),
			// An empty thumb is legitimate: the grid shows a placeholder.
			ThumbURL: r.Resolve(firstNonEmpty(rec.Thumb, rec.Poster, rec.Thumbnail), token),
			FullURL:  full,
			WatchURL: watchURL(full, r, token),
			Key:      recordKey("video", i, rec.Full, rec.URL, rec.Name),
		})
	}
	return videos
}

// watchURL rewrites a resolved streaming URL into the server's player page
// for the same content. The substitution runs on the resolved string, then
// token injection is re-applied because /watch/ is on the allow-list too.
func watchURL(full string, r *Resolver, token string) string {
	if full == "" {
		return ""
	}
	watch := strings.Replace(full, "/api/video/", "/watch/", 1)
	return r.WithToken(watch, token)
}

// recordKey derives a stable identifier for a record from the first
// non-empty source field. Records carrying no usable field at all get an
// index-derived key within their normalized slice; positional identity is
// stable across re-renders of the same listing, unlike a random fallback.
func recordKey(kind string, index int, sources ...string) string {
	if key := firstNonEmpty(sources...); key != "" {
		return key
	}
	return fmt.Sprintf("%s#%d", kind, index)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
