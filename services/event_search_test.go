package services

import (
	"testing"

	"github.com/Vinh-tho/Ticket-App-sub001/dto"
)

func sampleEvents() []dto.EventSummary {
	return []dto.EventSummary{
		{ID: 1, Name: "Đêm nhạc Trịnh Công Sơn", Category: "music", Province: "Hà Nội", Tags: []string{"ca nhạc", "acoustic"}},
		{ID: 2, Name: "Giải bóng đá sinh viên", Category: "sport", Province: "Đà Nẵng", Tags: []string{"bóng đá"}},
		{ID: 3, Name: "Workshop nhiếp ảnh", Category: "workshop", Province: "Hồ Chí Minh", Tags: []string{"workshop"}},
	}
}

func TestParseEventCategory(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"đêm ca nhạc cuối tuần", "music"},
		{"xem bóng đá ở đâu", "sport"},
		{"workshop cuối tuần", "workshop"},
		{"kịch sân khấu nhỏ", "theater"},
		{"mua vé", ""},
	}
	for _, tc := range cases {
		if got := parseEventCategory(tc.query); got != tc.want {
			t.Errorf("parseEventCategory(%q) = %q, muốn %q", tc.query, got, tc.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("concert", "concert"); got != 1.0 {
		t.Errorf("chuỗi giống nhau phải ra 1.0, có %v", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Errorf("hai chuỗi rỗng phải ra 1.0, có %v", got)
	}
	if got := calculateSimilarity("abc", "xyz"); got > 0.5 {
		t.Errorf("chuỗi khác hẳn nhau phải ra điểm thấp, có %v", got)
	}
}

func TestSearchEventsRanking(t *testing.T) {
	results := SearchEvents("đêm nhạc trịnh công sơn", sampleEvents())
	if len(results) == 0 {
		t.Fatal("không có kết quả nào")
	}
	if results[0].Event.ID != 1 {
		t.Errorf("kết quả đầu là sự kiện %d, muốn concert khớp tên nhất", results[0].Event.ID)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Error("kết quả phải xếp theo điểm giảm dần")
		}
	}
}

func TestSearchEventsCategoryBoost(t *testing.T) {
	results := SearchEvents("bóng đá", sampleEvents())
	if len(results) == 0 {
		t.Fatal("không có kết quả nào")
	}
	if results[0].Event.ID != 2 {
		t.Errorf("query thể thao phải xếp sự kiện bóng đá lên đầu, có %d", results[0].Event.ID)
	}
}

func TestSearchEventsNoMatch(t *testing.T) {
	results := SearchEvents("zzzz9999", sampleEvents())
	for _, r := range results {
		if r.Score <= 0 {
			t.Errorf("kết quả điểm %d không được trả về", r.Score)
		}
	}
}

func TestNormalizeInput(t *testing.T) {
	if got := normalizeInput("  Hà Nội  "); got != "ha noi" {
		t.Errorf("normalizeInput = %q, muốn %q", got, "ha noi")
	}
}
