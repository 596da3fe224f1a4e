package shared

// MediaRef describes one piece of content to add to the playlist, as sent
// over IPC. It mirrors the fields of playlist.Media that a client can set;
// the daemon assigns everything else (ExternalRef, refcount) on construction.
type MediaRef struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Album       string `json:"album,omitempty"`
	TrackNumber int    `json:"track_number,omitempty"`
}

// ItemInfo describes one playlist entry in a status/list response.
type ItemInfo struct {
	ID         uint64 `json:"id"`
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	Artist     string `json:"artist,omitempty"`
	Album      string `json:"album,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`
	IsCurrent  bool   `json:"is_current"`
}

// StatusInfo is the daemon's snapshot response to CmdStatus.
type StatusInfo struct {
	Count         int       `json:"count"`
	CurrentIndex  int       `json:"current_index"`
	HasPrev       bool      `json:"has_prev"`
	HasNext       bool      `json:"has_next"`
	Repeat        string    `json:"repeat"`
	Order         string    `json:"order"`
	StoppedAction string    `json:"stopped_action"`
	Playing       bool      `json:"playing"`
	Paused        bool      `json:"paused"`
	Volume        int       `json:"volume"`
	PositionMs    int64     `json:"position_ms,omitempty"`
	DurationMs    int64     `json:"duration_ms,omitempty"`
	Current       *ItemInfo `json:"current,omitempty"`
}
