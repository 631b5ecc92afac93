package arr

// CustomFormat is an encode-quality tag applied to a grabbed release.
type CustomFormat struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SystemStatus is the subset of system/status used for connection tests.
type SystemStatus struct {
	AppName string `json:"appName"`
	Version string `json:"version"`
}

// Series is a Sonarr series resource.
type Series struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Monitored bool   `json:"monitored"`
}

// Episode is a Sonarr episode resource. EpisodeFile is only populated when
// episodes are listed with file detail included.
type Episode struct {
	ID            int64        `json:"id"`
	SeriesID      int64        `json:"seriesId"`
	SeasonNumber  int32        `json:"seasonNumber"`
	EpisodeNumber int32        `json:"episodeNumber"`
	Title         string       `json:"title"`
	Monitored     bool         `json:"monitored"`
	HasFile       bool         `json:"hasFile"`
	EpisodeFile   *EpisodeFile `json:"episodeFile,omitempty"`
}

// EpisodeFile carries the quality metadata of an imported episode.
type EpisodeFile struct {
	ID                int64          `json:"id"`
	RelativePath      string         `json:"relativePath"`
	Size              int64          `json:"size"`
	CustomFormatScore int            `json:"customFormatScore"`
	CustomFormats     []CustomFormat `json:"customFormats"`
}

// Movie is a Radarr movie resource.
type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Year        int32  `json:"year"`
	Monitored   bool   `json:"monitored"`
	HasFile     bool   `json:"hasFile"`
	MovieFileID int64  `json:"movieFileId"`
}

// MovieFile carries the quality metadata of an imported movie.
type MovieFile struct {
	ID                int64          `json:"id"`
	MovieID           int64          `json:"movieId"`
	RelativePath      string         `json:"relativePath"`
	Size              int64          `json:"size"`
	CustomFormatScore int            `json:"customFormatScore"`
	CustomFormats     []CustomFormat `json:"customFormats"`
}
