package arr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Makhuta/arr-monitor-manager/pkg/logger"
)

const apiBasePath = "/api/v3"

// HTTPClient executes a single HTTP request.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client wraps the Sonarr/Radarr v3 REST API. Episode operations are only
// valid for Sonarr clients and movie operations only for Radarr clients.
type Client interface {
	Service() ServiceType
	TestConnection(ctx context.Context) error
	Series(ctx context.Context) ([]Series, error)
	EpisodesBySeries(ctx context.Context, seriesID int64, includeFile bool) ([]Episode, error)
	GetEpisode(ctx context.Context, episodeID int64) (Episode, error)
	UnmonitorEpisode(ctx context.Context, episodeID int64) error
	UnmonitorEpisodes(ctx context.Context, episodeIDs []int64) error
	Movies(ctx context.Context) ([]Movie, error)
	GetMovie(ctx context.Context, movieID int64) (Movie, error)
	MovieFile(ctx context.Context, movieFileID int64) (MovieFile, error)
	UnmonitorMovie(ctx context.Context, movieID int64) error
}

type client struct {
	http    HTTPClient
	scheme  string
	host    string
	apiKey  string
	service ServiceType
}

// New creates a client for the given manager endpoint.
func New(httpClient HTTPClient, scheme, host, apiKey string, service ServiceType) Client {
	return &client{
		http:    httpClient,
		scheme:  scheme,
		host:    host,
		apiKey:  apiKey,
		service: service,
	}
}

func (c *client) Service() ServiceType {
	return c.service
}

func (c *client) url(path string, query url.Values) *url.URL {
	u := &url.URL{
		Scheme: c.scheme,
		Host:   c.host,
		Path:   apiBasePath + path,
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u
}

func (c *client) do(ctx context.Context, method string, u *url.URL, body any) ([]byte, error) {
	log := logger.FromCtx(ctx)

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	log.Debugw("arr request", "method", method, "path", u.Path)
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		log.Warnw("arr request failed", "method", method, "path", u.Path, "status", res.Status)
		return nil, fmt.Errorf("%s %s: unexpected status %s", method, u.Path, res.Status)
	}

	return b, nil
}

// TestConnection fetches system/status to verify the endpoint and api key.
func (c *client) TestConnection(ctx context.Context) error {
	b, err := c.do(ctx, http.MethodGet, c.url("/system/status", nil), nil)
	if err != nil {
		return err
	}

	var status SystemStatus
	if err := json.Unmarshal(b, &status); err != nil {
		return err
	}

	logger.FromCtx(ctx).Debugw("connected", "service", c.service, "version", status.Version)
	return nil
}

// Series lists all series known to Sonarr.
func (c *client) Series(ctx context.Context) ([]Series, error) {
	if c.service != ServiceSonarr {
		return nil, fmt.Errorf("series listing requires a sonarr client, have %s", c.service)
	}

	b, err := c.do(ctx, http.MethodGet, c.url("/series", nil), nil)
	if err != nil {
		return nil, err
	}

	var series []Series
	if err := json.Unmarshal(b, &series); err != nil {
		return nil, err
	}

	return series, nil
}

// EpisodesBySeries lists the episodes of one series, optionally with the
// imported file detail embedded.
func (c *client) EpisodesBySeries(ctx context.Context, seriesID int64, includeFile bool) ([]Episode, error) {
	if c.service != ServiceSonarr {
		return nil, fmt.Errorf("episode listing requires a sonarr client, have %s", c.service)
	}

	q := url.Values{}
	q.Set("seriesId", strconv.FormatInt(seriesID, 10))
	if includeFile {
		q.Set("includeEpisodeFile", "true")
	}

	b, err := c.do(ctx, http.MethodGet, c.url("/episode", q), nil)
	if err != nil {
		return nil, err
	}

	var episodes []Episode
	if err := json.Unmarshal(b, &episodes); err != nil {
		return nil, err
	}

	return episodes, nil
}

// GetEpisode fetches a single Sonarr episode.
func (c *client) GetEpisode(ctx context.Context, episodeID int64) (Episode, error) {
	var episode Episode
	if c.service != ServiceSonarr {
		return episode, fmt.Errorf("episode fetch requires a sonarr client, have %s", c.service)
	}

	b, err := c.do(ctx, http.MethodGet, c.url(fmt.Sprintf("/episode/%d", episodeID), nil), nil)
	if err != nil {
		return episode, err
	}

	err = json.Unmarshal(b, &episode)
	return episode, err
}

// UnmonitorEpisode flips a single Sonarr episode to unmonitored. The full
// episode resource is fetched first so the update does not drop any fields
// the API requires on PUT.
func (c *client) UnmonitorEpisode(ctx context.Context, episodeID int64) error {
	if c.service != ServiceSonarr {
		return fmt.Errorf("episode unmonitor requires a sonarr client, have %s", c.service)
	}

	return c.unmonitorResource(ctx, fmt.Sprintf("/episode/%d", episodeID))
}

// UnmonitorEpisodes flips many Sonarr episodes to unmonitored in one call.
func (c *client) UnmonitorEpisodes(ctx context.Context, episodeIDs []int64) error {
	if !c.service.SupportsBulkUnmonitor() {
		return fmt.Errorf("%s does not support bulk unmonitor", c.service)
	}
	if len(episodeIDs) == 0 {
		return errors.New("no episode ids given")
	}

	body := map[string]any{
		"episodeIds": episodeIDs,
		"monitored":  false,
	}

	_, err := c.do(ctx, http.MethodPut, c.url("/episode/monitor", nil), body)
	return err
}

// Movies lists all movies known to Radarr.
func (c *client) Movies(ctx context.Context) ([]Movie, error) {
	if c.service != ServiceRadarr {
		return nil, fmt.Errorf("movie listing requires a radarr client, have %s", c.service)
	}

	b, err := c.do(ctx, http.MethodGet, c.url("/movie", nil), nil)
	if err != nil {
		return nil, err
	}

	var movies []Movie
	if err := json.Unmarshal(b, &movies); err != nil {
		return nil, err
	}

	return movies, nil
}

// GetMovie fetches a single Radarr movie.
func (c *client) GetMovie(ctx context.Context, movieID int64) (Movie, error) {
	var movie Movie
	if c.service != ServiceRadarr {
		return movie, fmt.Errorf("movie fetch requires a radarr client, have %s", c.service)
	}

	b, err := c.do(ctx, http.MethodGet, c.url(fmt.Sprintf("/movie/%d", movieID), nil), nil)
	if err != nil {
		return movie, err
	}

	err = json.Unmarshal(b, &movie)
	return movie, err
}

// MovieFile fetches the file metadata for one imported movie.
func (c *client) MovieFile(ctx context.Context, movieFileID int64) (MovieFile, error) {
	var file MovieFile
	if c.service != ServiceRadarr {
		return file, fmt.Errorf("movie file fetch requires a radarr client, have %s", c.service)
	}

	b, err := c.do(ctx, http.MethodGet, c.url(fmt.Sprintf("/moviefile/%d", movieFileID), nil), nil)
	if err != nil {
		return file, err
	}

	err = json.Unmarshal(b, &file)
	return file, err
}

// UnmonitorMovie flips a single Radarr movie to unmonitored.
func (c *client) UnmonitorMovie(ctx context.Context, movieID int64) error {
	if c.service != ServiceRadarr {
		return fmt.Errorf("movie unmonitor requires a radarr client, have %s", c.service)
	}

	return c.unmonitorResource(ctx, fmt.Sprintf("/movie/%d", movieID))
}

// unmonitorResource reads the resource at path, sets monitored to false and
// writes it back. The resource is kept as a raw map so fields this package
// does not model survive the round trip.
func (c *client) unmonitorResource(ctx context.Context, path string) error {
	log := logger.FromCtx(ctx)
	u := c.url(path, nil)

	b, err := c.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	var resource map[string]any
	if err := json.Unmarshal(b, &resource); err != nil {
		return err
	}

	resource["monitored"] = false

	if _, err := c.do(ctx, http.MethodPut, u, resource); err != nil {
		return err
	}

	log.Debugw("unmonitored resource", "path", u.Path, "service", c.service)
	return nil
}
