package models

// CommunityStats is the aggregate counters shown on the home view.
type CommunityStats struct {
	Members  int `json:"members"`
	Farmers  int `json:"farmers"`
	Posts    int `json:"posts"`
	Products int `json:"products"`
}

// UploadResult describes a stored file after a successful upload.
type UploadResult struct {
	URL    string `json:"url"`
	Key    string `json:"key"`
	Bucket string `json:"bucket"`
	Size   int64  `json:"size"`
}
