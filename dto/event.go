package dto

// EventSummary là sự kiện rút gọn lấy từ core API cho màn hình tìm kiếm
type EventSummary struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Location  string    `json:"location"`
	Province  string    `json:"province"`
	StartTime string    `json:"startTime"`
	MinPrice  FlexFloat `json:"minPrice"`
	Tags      []string  `json:"tags"`
}

// ScoredEvent gắn điểm phù hợp cho một sự kiện khi tìm kiếm
type ScoredEvent struct {
	Event EventSummary `json:"event"`
	Score int          `json:"score"`
}

// EventSearchFilters là bộ lọc tìm kiếm sự kiện, lưu lại theo session
// để lần tìm sau chỉ cần nhập phần thay đổi
type EventSearchFilters struct {
	Query    string   `json:"query"`
	Category string   `json:"category"`
	Province string   `json:"province"`
	MaxPrice *float64 `json:"maxPrice"`
	Limit    *int     `json:"limit"`
}
