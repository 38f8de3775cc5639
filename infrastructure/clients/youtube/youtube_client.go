package youtube

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"video-field/domain/model"
)

// catalogPageSize is the provider's maximum page size for list calls. One
// page per request; the next-page token is handed back to the caller.
const catalogPageSize = 50

// Client talks to the YouTube Data API with a caller-supplied access token.
// Token lifecycle lives in the auth use case; the client never refreshes.
type Client struct{}

func NewClient() *Client { return &Client{} }

func (c *Client) service(ctx context.Context, accessToken string) (*youtube.Service, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	service, err := youtube.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return service, nil
}

func (c *Client) ListPlaylists(ctx context.Context, accessToken string) ([]model.PlaylistEntry, string, error) {
	service, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, "", err
	}
	resp, err := service.Playlists.List([]string{"snippet", "status"}).
		Mine(true).
		MaxResults(catalogPageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, "", classifyError(err)
	}

	entries := make([]model.PlaylistEntry, 0, len(resp.Items))
	for _, item := range resp.Items {
		entry := model.PlaylistEntry{ID: item.Id}
		if item.Snippet != nil {
			entry.Title = item.Snippet.Title
		}
		if item.Status != nil {
			entry.Privacy = model.PrivacyStatus(item.Status.PrivacyStatus)
		}
		entries = append(entries, entry)
	}
	return entries, resp.NextPageToken, nil
}

func (c *Client) ListPlaylistItems(ctx context.Context, accessToken, playlistID string) ([]model.VideoEntry, string, error) {
	service, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, "", err
	}
	resp, err := service.PlaylistItems.List([]string{"snippet", "status"}).
		PlaylistId(playlistID).
		MaxResults(catalogPageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, "", classifyError(err)
	}

	entries := make([]model.VideoEntry, 0, len(resp.Items))
	for _, item := range resp.Items {
		entry := model.VideoEntry{}
		if item.Snippet != nil {
			entry.Title = item.Snippet.Title
			if item.Snippet.ResourceId != nil {
				entry.ID = item.Snippet.ResourceId.VideoId
			}
		}
		if item.Status != nil {
			entry.Privacy = model.PrivacyStatus(item.Status.PrivacyStatus)
		}
		entries = append(entries, entry)
	}
	return entries, resp.NextPageToken, nil
}

// GetVideo returns (nil, nil) when the id does not resolve under this
// credential. The provider reports that as zero items, not a 404.
func (c *Client) GetVideo(ctx context.Context, accessToken, videoID string) (*model.VideoSnapshot, error) {
	service, err := c.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	resp, err := service.Videos.List([]string{"snippet", "status"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, classifyError(err)
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}

	item := resp.Items[0]
	snapshot := &model.VideoSnapshot{ID: item.Id}
	if item.Snippet != nil {
		snapshot.Title = item.Snippet.Title
		snapshot.Description = item.Snippet.Description
		snapshot.CategoryID = item.Snippet.CategoryId
		snapshot.Tags = item.Snippet.Tags
	}
	if item.Status != nil {
		snapshot.Privacy = model.PrivacyStatus(item.Status.PrivacyStatus)
	}
	return snapshot, nil
}

// UpdateVideo pushes the snapshot back. The snapshot must have been read
// first so unchanged fields are preserved; videos.update replaces the whole
// snippet part.
func (c *Client) UpdateVideo(ctx context.Context, accessToken string, snapshot *model.VideoSnapshot) error {
	service, err := c.service(ctx, accessToken)
	if err != nil {
		return err
	}
	video := &youtube.Video{
		Id: snapshot.ID,
		Snippet: &youtube.VideoSnippet{
			Title:       snapshot.Title,
			Description: snapshot.Description,
			CategoryId:  snapshot.CategoryID,
			Tags:        snapshot.Tags,
		},
	}
	if _, err := service.Videos.Update([]string{"snippet"}, video).Context(ctx).Do(); err != nil {
		return classifyError(err)
	}
	return nil
}

func (c *Client) DeleteVideo(ctx context.Context, accessToken, videoID string) error {
	service, err := c.service(ctx, accessToken)
	if err != nil {
		return err
	}
	if err := service.Videos.Delete(videoID).Context(ctx).Do(); err != nil {
		if isNotFound(err) {
			// Already gone; deletion is idempotent from the record's view
			return nil
		}
		return classifyError(err)
	}
	return nil
}

func (c *Client) GetAccountInfo(ctx context.Context, accessToken string) (*model.AccountInfo, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	service, err := oauth2api.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo service: %w", err)
	}
	info, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, classifyError(err)
	}
	return &model.AccountInfo{Email: info.Email, Name: info.Name}, nil
}
