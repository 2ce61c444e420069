// Package basemodels - Test chuẩn hóa timestamp và visibility filter.
package basemodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeTimestamp_Canonicalization(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ms := now.UnixMilli()

	cases := []struct {
		name string
		in   interface{}
		want int64
	}{
		{"int64 giữ nguyên", ms, ms},
		{"primitive.DateTime", primitive.NewDateTimeFromTime(now), ms},
		{"primitive.Timestamp giây", primitive.Timestamp{T: uint32(now.Unix())}, now.Unix() * 1000},
		{"time.Time", now, ms},
		{"int32 epoch giây", int32(now.Unix()), now.Unix() * 1000},
		{"float64 epoch ms", float64(ms), ms},
		{"chuỗi RFC3339", now.Format(time.RFC3339), ms},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := RawDocument{TimestampField: tc.in}
			got := NormalizeTimestamp(raw)
			assert.Equal(t, tc.want, got[TimestampField])
		})
	}
}

func TestNormalizeTimestamp_Idempotent(t *testing.T) {
	raw := RawDocument{TimestampField: primitive.NewDateTimeFromTime(time.Now())}
	once := NormalizeTimestamp(raw)
	first, ok := once[TimestampField].(int64)
	require.True(t, ok, "sau chuẩn hóa timestamp phải là int64")

	twice := NormalizeTimestamp(once)
	assert.Equal(t, first, twice[TimestampField], "chuẩn hóa lần hai không được đổi giá trị")
}

func TestNormalizeTimestamp_MalformedKeptVerbatim(t *testing.T) {
	raw := RawDocument{TimestampField: "không phải thời gian"}
	got := NormalizeTimestamp(raw)
	assert.Equal(t, "không phải thời gian", got[TimestampField], "giá trị không parse được phải giữ nguyên")

	// Thiếu field cũng không lỗi
	empty := NormalizeTimestamp(RawDocument{})
	_, exists := empty[TimestampField]
	assert.False(t, exists)
}

func TestTimestampOf_UnknownIsZero(t *testing.T) {
	assert.Equal(t, int64(0), TimestampOf(RawDocument{}))
	assert.Equal(t, int64(0), TimestampOf(RawDocument{TimestampField: "rác"}))
	assert.Equal(t, int64(42), TimestampOf(RawDocument{TimestampField: int64(42)}))
	assert.Equal(t, int64(0), TimestampOf(nil))
}

func TestFilterVisible_KeepsOnlyVisibleInOrder(t *testing.T) {
	docs := []RawDocument{
		{"title": "a", VisibleField: true},
		{"title": "b", VisibleField: false},
		{"title": "c", VisibleField: true},
		{"title": "d"}, // thiếu cờ coi như ẩn
		{"title": "e", VisibleField: "true"}, // sai kiểu coi như ẩn
	}

	got := FilterVisible(docs, false)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0]["title"])
	assert.Equal(t, "c", got[1]["title"])
}

func TestFilterVisible_Idempotent(t *testing.T) {
	docs := []RawDocument{
		{"title": "a", VisibleField: true},
		{"title": "b", VisibleField: false},
	}
	once := FilterVisible(docs, false)
	twice := FilterVisible(once, false)
	assert.Equal(t, once, twice)
}

func TestFilterVisible_BypassIsIdentity(t *testing.T) {
	docs := []RawDocument{
		{"title": "a", VisibleField: false},
		{"title": "b", VisibleField: true},
	}
	got := FilterVisible(docs, true)
	assert.Equal(t, docs, got, "bypass phải trả về input không đổi, kể cả document ẩn")
}

func TestDecodeAll_PreservesOrder(t *testing.T) {
	type doc struct {
		Title string `bson:"title"`
	}
	raw := []RawDocument{{"title": "một"}, {"title": "hai"}}
	got, err := DecodeAll[doc](raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "một", got[0].Title)
	assert.Equal(t, "hai", got[1].Title)
}
