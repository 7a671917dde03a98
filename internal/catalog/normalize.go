package catalog

import "moodtunes/internal/model"

// Normalize projects raw catalog records into the stable track shape.
// Records missing any required field (name, artist, external URL) are dropped;
// missing optional fields become null instead of failing the projection.
// Input order is preserved, the catalog's ranking is the recommendation order.
func Normalize(records []RawTrack) []model.Track {
	tracks := make([]model.Track, 0, len(records))
	for _, rec := range records {
		externalURL := rec.ExternalURLs["spotify"]
		if rec.Name == "" || len(rec.Artists) == 0 || rec.Artists[0].Name == "" || externalURL == "" {
			continue
		}

		track := model.Track{
			Name:        rec.Name,
			Artist:      rec.Artists[0].Name,
			PreviewURL:  rec.PreviewURL,
			ExternalURL: externalURL,
		}
		if len(rec.Album.Images) > 0 && rec.Album.Images[0].URL != "" {
			url := rec.Album.Images[0].URL
			track.AlbumArtURL = &url
		}
		tracks = append(tracks, track)
	}
	return tracks
}
