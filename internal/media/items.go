// Package media defines the canonical item model for album contents and the
// machinery that produces it: URL resolution with token injection, and
// normalization of the server's heterogeneous listing shapes.
//
// The album API has grown several historical field spellings for the same
// thing (thumb/thumbnail/poster, full/url/src, name/fileName). Everything
// downstream of this package sees only the canonical Folder/Photo/Video
// records, never the raw wire shapes.
package media

// Folder is a navigable sub-album. Path is the navigation target when the
// folder is activated. Name is kept raw; decode it for display only.
type Folder struct {
	Name string
	Path string
}

// Photo is a single viewable image with a grid thumbnail and a full
// resolution URL, both already resolved and token-authorized.
type Photo struct {
	Name     string
	ThumbURL string
	FullURL  string
	Key      string
}

// Video is a single playable item. ThumbURL may be empty, meaning no poster
// is available and the grid renders a placeholder. WatchURL points at the
// server's player page for the same content.
type Video struct {
	Name     string
	ThumbURL string
	FullURL  string
	WatchURL string
	Key      string
}

// Listing is the normalized content of one album folder. The three slices
// preserve the server's ordering and are disjoint by construction.
type Listing struct {
	Folders []Folder
	Photos  []Photo
	Videos  []Video
}

// Empty reports whether the listing holds nothing at all.
func (l Listing) Empty() bool {
	return len(l.Folders) == 0 && len(l.Photos) == 0 && len(l.Videos) == 0
}

// MediaCount returns the number of viewable (non-folder) items.
func (l Listing) MediaCount() int {
	return len(l.Photos) + len(l.Videos)
}
