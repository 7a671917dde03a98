package model

// Track is the stable projection of a catalog search result. PreviewURL and
// AlbumArtURL are nullable because the catalog omits them for many tracks.
type Track struct {
	Name        string  `json:"name"`
	Artist      string  `json:"artist"`
	PreviewURL  *string `json:"previewUrl"`
	ExternalURL string  `json:"externalUrl"`
	AlbumArtURL *string `json:"albumArtUrl"`
}
