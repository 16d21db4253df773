package api

// Backend record projections. The client renders these as-is; optional
// fields show a placeholder when empty.

type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Studio struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Anime struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	JapaneseTitle string  `json:"japanese_title,omitempty"`
	Status        string  `json:"status,omitempty"`
	Type          string  `json:"type,omitempty"`
	Synopsis      string  `json:"synopsis,omitempty"`
	EpisodesTotal int     `json:"episodes_total,omitempty"`
	ReleaseDate   string  `json:"release_date,omitempty"`
	EndDate       string  `json:"end_date,omitempty"`
	CoverURL      string  `json:"cover_url,omitempty"`
	Studio        *Studio `json:"studio,omitempty"`
	Genres        []Genre `json:"genres,omitempty"`
}

type Episode struct {
	ID              int    `json:"id"`
	AnimeID         int    `json:"anime_id"`
	EpisodeNumber   int    `json:"episode_number"`
	Title           string `json:"title,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	AirDate         string `json:"air_date,omitempty"`
}

// Watch statuses accepted by the progress endpoint.
const (
	StatusPlanToWatch = "Plan to Watch"
	StatusWatching    = "Watching"
	StatusCompleted   = "Completed"
	StatusOnHold      = "On Hold"
	StatusDropped     = "Dropped"
)

type Progress struct {
	ID              int    `json:"id,omitempty"`
	UserID          int    `json:"user_id"`
	AnimeID         int    `json:"anime_id"`
	EpisodesWatched int    `json:"episodes_watched"`
	Status          string `json:"status"`
	Score           *int   `json:"score"`
}

type Character struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Favorite bookmarks either an anime or a character, never both.
type Favorite struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	AnimeID     *int       `json:"anime_id"`
	CharacterID *int       `json:"character_id"`
	CreatedAt   string     `json:"created_at,omitempty"`
	Anime       *Anime     `json:"anime,omitempty"`
	Character   *Character `json:"character,omitempty"`
}
