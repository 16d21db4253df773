// Package api is the client for the AnimeTracker REST backend. Every
// request goes through one configured resty client that attaches the
// stored bearer token when one is present.
package api

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// TokenProvider returns the current bearer token, or "" for anonymous calls.
type TokenProvider func() string

type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration, token TokenProvider) *Client {
	r := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if token != nil {
		r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if t := token(); t != "" {
				req.SetAuthToken(t)
			}
			return nil
		})
	}

	return &Client{http: r}
}

type errorBody struct {
	Detail string `json:"detail"`
}

func wrap(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.IsError() {
		detail := FallbackDetail
		if body, ok := resp.Error().(*errorBody); ok && body.Detail != "" {
			detail = body.Detail
		}
		return &Error{Status: resp.StatusCode(), Detail: detail}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	req := c.http.R().SetContext(ctx).SetResult(out).SetError(&errorBody{})
	if len(params) > 0 {
		req.SetQueryParams(params)
	}
	return wrap(req.Get(path))
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return wrap(c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(out).
		SetError(&errorBody{}).
		Post(path))
}

// Register creates a new account. It does not authenticate the caller.
func (c *Client) Register(ctx context.Context, username, email, password string) (*User, error) {
	var user User
	payload := map[string]string{"username": username, "email": email, "password": password}
	if err := c.post(ctx, "/auth/register", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a bearer token. The backend expects an
// OAuth2 password form, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (*Token, error) {
	var token Token
	err := wrap(c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{"username": username, "password": password}).
		SetResult(&token).
		SetError(&errorBody{}).
		Post("/auth/token"))
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Me resolves the identity behind the stored token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/auth/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AnimeFilter narrows ListAnime. Zero-valued fields are omitted.
type AnimeFilter struct {
	GenreName string
	Status    string
	Search    string
}

func (f AnimeFilter) params() map[string]string {
	params := map[string]string{}
	if f.GenreName != "" {
		params["genre_name"] = f.GenreName
	}
	if f.Status != "" {
		params["status"] = f.Status
	}
	if f.Search != "" {
		params["search"] = f.Search
	}
	return params
}

func (c *Client) ListAnime(ctx context.Context, filter AnimeFilter) ([]Anime, error) {
	var list []Anime
	if err := c.get(ctx, "/anime", filter.params(), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetAnime(ctx context.Context, id int) (*Anime, error) {
	var anime Anime
	if err := c.get(ctx, fmt.Sprintf("/anime/%d", id), nil, &anime); err != nil {
		return nil, err
	}
	return &anime, nil
}

func (c *Client) ListGenres(ctx context.Context) ([]Genre, error) {
	var list []Genre
	if err := c.get(ctx, "/genres", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) ListEpisodes(ctx context.Context, animeID int) ([]Episode, error) {
	var list []Episode
	if err := c.get(ctx, fmt.Sprintf("/episodes/anime/%d", animeID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetProgress returns the user's watch state for one anime. A 404 means
// the pairing has never been saved and is not an error: the caller gets
// (nil, nil) and starts from zero values.
func (c *Client) GetProgress(ctx context.Context, animeID, userID int) (*Progress, error) {
	var progress Progress
	err := c.get(ctx, fmt.Sprintf("/anime/%d/progress/%d", animeID, userID), nil, &progress)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// SaveProgress upserts the watch state and returns the stored record.
func (c *Client) SaveProgress(ctx context.Context, progress Progress) (*Progress, error) {
	var saved Progress
	path := fmt.Sprintf("/anime/%d/progress", progress.AnimeID)
	if err := c.post(ctx, path, progress, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) GetCharacter(ctx context.Context, id int) (*Character, error) {
	var character Character
	if err := c.get(ctx, fmt.Sprintf("/characters/%d", id), nil, &character); err != nil {
		return nil, err
	}
	return &character, nil
}

func (c *Client) SearchCharacters(ctx context.Context, term string) ([]Character, error) {
	var list []Character
	if err := c.get(ctx, "/characters", map[string]string{"search": term}, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/"+strconv.Itoa(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListFavorites(ctx context.Context, userID int) ([]Favorite, error) {
	var list []Favorite
	if err := c.get(ctx, fmt.Sprintf("/users/%d/favorites", userID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}
