package models

import (
	communitymodels "github.com/werbhq/schello-public/internal/api/community/models"
	excisemodels "github.com/werbhq/schello-public/internal/api/excise/models"
)

// Kind phân biệt nguồn của item trong feed
const (
	FeedKindCommunity = "COMMUNITY" // Nội dung do cộng đồng gửi, đã qua moderation
	FeedKindExcise    = "EXCISE"    // Nội dung biên tập
)

// MediaType phân biệt loại nội dung của item trong feed
const (
	MediaTypeVideo   = "VIDEO"
	MediaTypeArticle = "ARTICLE"
	MediaTypeNews    = "NEWS"
	MediaTypeEvent   = "EVENT"
)

// FeedItem là shape thống nhất cho mọi nguồn nội dung trong feed.
// Field nguồn nào không có thì để trống (omitempty), client dựa vào
// kind + mediaType để render.
type FeedItem struct {
	ID        string `json:"id"`        // ID document gốc trong store
	Kind      string `json:"kind"`      // COMMUNITY | EXCISE
	MediaType string `json:"mediaType"` // VIDEO | ARTICLE | NEWS | EVENT

	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Email       string `json:"email,omitempty"`
	Source      string `json:"source,omitempty"`
	Platform    string `json:"platform,omitempty"`
	URL         string `json:"url,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`

	Timestamp int64 `json:"timestamp"` // Epoch ms, 0 nghĩa là không rõ (xếp cuối)
}

// FromCommunityVideo chuyển CommunityVideo thành FeedItem
func FromCommunityVideo(v communitymodels.CommunityVideo) FeedItem {
	return FeedItem{
		ID:          v.ID.Hex(),
		Kind:        FeedKindCommunity,
		MediaType:   MediaTypeVideo,
		Title:       v.Title,
		Description: v.Description,
		Author:      v.Author,
		Email:       v.Email,
		Platform:    v.Platform,
		URL:         v.URL,
		Thumbnail:   v.Thumbnail,
		Timestamp:   v.Timestamp,
	}
}

// FromCommunityArticle chuyển CommunityArticle thành FeedItem
func FromCommunityArticle(a communitymodels.CommunityArticle) FeedItem {
	return FeedItem{
		ID:          a.ID.Hex(),
		Kind:        FeedKindCommunity,
		MediaType:   MediaTypeArticle,
		Title:       a.Title,
		Description: a.Description,
		Author:      a.Author,
		Email:       a.Email,
		Timestamp:   a.Timestamp,
	}
}

// FromExciseMedia chuyển ExciseMedia thành FeedItem với mediaType do caller chỉ định
// theo collection nguồn (events, videos, news).
func FromExciseMedia(m excisemodels.ExciseMedia, mediaType string) FeedItem {
	return FeedItem{
		ID:          m.ID.Hex(),
		Kind:        FeedKindExcise,
		MediaType:   mediaType,
		Title:       m.Title,
		Description: m.Description,
		Source:      m.Source,
		RedirectURL: m.RedirectURL,
		Thumbnail:   m.Thumbnail,
		Timestamp:   m.Timestamp,
	}
}
