package catalog

// RawTrack is the catalog's own shape for a search result. Fields beyond the
// ones projected into model.Track are ignored on decode.
type RawTrack struct {
	Name         string            `json:"name"`
	Artists      []RawArtist       `json:"artists"`
	PreviewURL   *string           `json:"preview_url"`
	ExternalURLs map[string]string `json:"external_urls"`
	Album        RawAlbum          `json:"album"`
}

type RawArtist struct {
	Name string `json:"name"`
}

type RawAlbum struct {
	Images []RawImage `json:"images"`
}

type RawImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}
