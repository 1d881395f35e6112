package video

// searchResponse mirrors the YouTube Data API v3 search result shape, reduced
// to the fields used.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID      searchID `json:"id"`
	Snippet snippet  `json:"snippet"`
}

type searchID struct {
	VideoID string `json:"videoId"`
}

type snippet struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Thumbnails  thumbnails `json:"thumbnails"`
}

type thumbnails struct {
	High thumbnail `json:"high"`
}

type thumbnail struct {
	URL string `json:"url"`
}
