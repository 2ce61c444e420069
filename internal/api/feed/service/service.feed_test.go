// Package feedsvc - Test merge/sort feed và search.
package feedsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feedmodels "github.com/werbhq/schello-public/internal/api/feed/models"
)

func item(id string, ts int64) feedmodels.FeedItem {
	return feedmodels.FeedItem{ID: id, Timestamp: ts}
}

func TestBuildFeed_SortedDescending(t *testing.T) {
	feed := BuildFeed(
		[]feedmodels.FeedItem{item("a", 100), item("b", 300)},
		[]feedmodels.FeedItem{item("c", 200)},
	)

	require.Len(t, feed, 3)
	for i := 1; i < len(feed); i++ {
		assert.GreaterOrEqual(t, feed[i-1].Timestamp, feed[i].Timestamp,
			"feed phải sort không tăng theo timestamp")
	}
	assert.Equal(t, "b", feed[0].ID)
}

func TestBuildFeed_UnknownTimestampLandsLast(t *testing.T) {
	feed := BuildFeed(
		[]feedmodels.FeedItem{item("unknown", 0), item("known", 50)},
	)

	require.Len(t, feed, 2)
	assert.Equal(t, "known", feed[0].ID)
	assert.Equal(t, "unknown", feed[1].ID)
}

func TestBuildFeed_StableForEqualTimestamps(t *testing.T) {
	feed := BuildFeed(
		[]feedmodels.FeedItem{item("first", 100)},
		[]feedmodels.FeedItem{item("second", 100)},
		[]feedmodels.FeedItem{item("third", 100)},
	)

	require.Len(t, feed, 3)
	assert.Equal(t, "first", feed[0].ID, "item trùng timestamp giữ thứ tự nguồn")
	assert.Equal(t, "second", feed[1].ID)
	assert.Equal(t, "third", feed[2].ID)
}

func TestBuildFeed_EmptySources(t *testing.T) {
	feed := BuildFeed()
	assert.NotNil(t, feed)
	assert.Empty(t, feed)
}

func TestSearchFeed_ShortQueryIsIdentity(t *testing.T) {
	items := []feedmodels.FeedItem{
		{ID: "a", Title: "Heroin awareness"},
		{ID: "b", Title: "Khác hẳn"},
	}

	for _, q := range []string{"", "h", "he"} {
		got := SearchFeed(items, q)
		assert.Equal(t, items, got, "query %q phải trả về danh sách không đổi", q)
	}
}

func TestSearchFeed_ShortQueryCountedInRunes(t *testing.T) {
	items := []feedmodels.FeedItem{
		{ID: "a", Title: "Hà Nội tuyên truyền"},
		{ID: "b", Title: "Khác hẳn"},
	}

	// "hà" dài 2 rune nhưng 3 byte, vẫn phải được coi là query ngắn
	got := SearchFeed(items, "hà")
	assert.Equal(t, items, got, "query 2 ký tự có dấu phải trả về danh sách không đổi")

	// 3 rune trở lên thì search có hiệu lực
	got = SearchFeed(items, "hà ")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestSearchFeed_CaseInsensitiveSubstring(t *testing.T) {
	items := []feedmodels.FeedItem{
		{ID: "title", Title: "Drug Awareness Week"},
		{ID: "desc", Description: "nói về drug rất chi tiết"},
		{ID: "author", Author: "DrugFreeClub"},
		{ID: "source", Source: "Excise Drug Cell"},
		{ID: "email", Email: "drug.watch@example.com"},
		{ID: "none", Title: "Không liên quan"},
	}

	got := SearchFeed(items, "DRUG")
	require.Len(t, got, 5)
	for _, it := range got {
		assert.NotEqual(t, "none", it.ID)
	}
}

func TestSearchFeed_PreservesOrder(t *testing.T) {
	items := []feedmodels.FeedItem{
		{ID: "1", Title: "drug a"},
		{ID: "2", Title: "khác"},
		{ID: "3", Title: "drug b"},
	}

	got := SearchFeed(items, "drug")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}
