package audit

// PostRecord is a single post as returned by the scraping provider. Every
// field is optional; which ones are populated depends on the actor and on
// the media type. Timestamps arrive in one of two places: TakenAt (numeric
// epoch) or Timestamp (numeric epoch or ISO 8601 string).
type PostRecord struct {
	ID            string   `json:"id,omitempty"`
	ShortCode     string   `json:"shortCode,omitempty"`
	URL           string   `json:"url,omitempty"`
	Caption       *string  `json:"caption,omitempty"`
	LikesCount    *int64   `json:"likesCount,omitempty"`
	CommentsCount *int64   `json:"commentsCount,omitempty"`
	PlayCount     *int64   `json:"videoPlayCount,omitempty"`
	DisplayURL    string   `json:"displayUrl,omitempty"`
	VideoURL      string   `json:"videoUrl,omitempty"`
	Type          string   `json:"type,omitempty"`
	TakenAt       *float64 `json:"takenAtTimestamp,omitempty"`
	Timestamp     any      `json:"timestamp,omitempty"`
}

// PostSummary is the normalized projection of the chosen PostRecord. It is
// both the LLM input and part of the API response. Absent provider fields
// become explicit JSON nulls, never omitted keys.
type PostSummary struct {
	Username  string  `json:"username"`
	Caption   *string `json:"caption"`
	Likes     *int64  `json:"likes"`
	Comments  *int64  `json:"comments"`
	Plays     *int64  `json:"plays"`
	PostURL   *string `json:"postUrl"`
	MediaURL  *string `json:"mediaUrl"`
	Timestamp *int64  `json:"timestamp"`
	Type      *string `json:"type"`
}

// Overall is the aggregate verdict. Score is always recomputed server-side.
type Overall struct {
	Verdict          string `json:"verdict"`
	ScoreExplanation string `json:"score_explanation"`
	Score            int    `json:"score"`
}

// Criterion is one scored category of the audit.
type Criterion struct {
	Name      string   `json:"name"`
	Score     float64  `json:"score"`
	Rationale string   `json:"rationale"`
	Examples  []string `json:"examples"`
}

// ChecklistItem is one actionable item the coach produced.
type ChecklistItem struct {
	Item string `json:"item"`
	Done bool   `json:"done"`
}

// NextPostTemplate is the suggested outline for the creator's next post.
type NextPostTemplate struct {
	Title  string   `json:"title"`
	Script []string `json:"script"`
}

// AuditResult is the structured critique produced by the model.
type AuditResult struct {
	Overall          Overall          `json:"overall"`
	Criteria         []Criterion      `json:"criteria"`
	Checklist        []ChecklistItem  `json:"checklist"`
	NextPostTemplate NextPostTemplate `json:"next_post_template"`
}

// AuditResponse is the success body of POST /audit.
type AuditResponse struct {
	OK    bool        `json:"ok"`
	Post  PostSummary `json:"post"`
	Audit AuditResult `json:"audit"`
	Email string      `json:"email"`
}

// FetchOptions parameterizes a provider fetch.
type FetchOptions struct {
	// PreferReels asks the provider for reel-type posts instead of the
	// generic feed.
	PreferReels bool
	// Limit bounds the number of records requested from the provider.
	Limit int
}

// Summarize projects a PostRecord onto the normalized summary shape.
// Media URL preference: video URL first, display (image) URL second.
func Summarize(username string, rec PostRecord) PostSummary {
	s := PostSummary{Username: username, Caption: rec.Caption}

	if rec.LikesCount != nil {
		s.Likes = rec.LikesCount
	}
	if rec.CommentsCount != nil {
		s.Comments = rec.CommentsCount
	}
	if rec.PlayCount != nil {
		s.Plays = rec.PlayCount
	}
	if rec.URL != "" {
		s.PostURL = &rec.URL
	}
	if rec.VideoURL != "" {
		s.MediaURL = &rec.VideoURL
	} else if rec.DisplayURL != "" {
		s.MediaURL = &rec.DisplayURL
	}
	if ts := timestampMillis(rec); ts != 0 {
		s.Timestamp = &ts
	}
	if rec.Type != "" {
		s.Type = &rec.Type
	}
	return s
}
