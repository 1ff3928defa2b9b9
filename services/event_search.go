package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/Vinh-tho/Ticket-App-sub001/dto"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi tìm kiếm: bỏ dấu tiếng Việt, lowercase
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Từ khóa nhận diện thể loại sự kiện trong query
var eventCategoryKeywords = map[string][]string{
	"music":    {"ca nhạc", "concert", "liveshow", "nhạc hội", "am nhac"},
	"sport":    {"thể thao", "bóng đá", "giải đấu", "the thao"},
	"theater":  {"sân khấu", "kịch", "cải lương", "san khau"},
	"workshop": {"hội thảo", "workshop", "talkshow", "hoi thao"},
}

// parseEventCategory tách thể loại sự kiện từ query; không khớp trả ""
func parseEventCategory(query string) string {
	normalizedQuery := normalizeInput(query)
	for category, keywords := range eventCategoryKeywords {
		normalized := make([]string, 0, len(keywords))
		for _, kw := range keywords {
			normalized = append(normalized, normalizeInput(kw))
		}
		matcher := createMatcher(normalized)
		match := matcher.Closest(normalizedQuery)
		if match != "" && strings.Contains(normalizedQuery, match) {
			return category
		}
	}
	return ""
}

// prepareProvinceList gom danh sách tỉnh/thành duy nhất cho closestmatch
func prepareProvinceList(events []dto.EventSummary) []string {
	uniqueValues := make(map[string]bool)
	for _, ev := range events {
		if ev.Province != "" {
			uniqueValues[normalizeInput(ev.Province)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// scoreEvent tính điểm phù hợp cho một sự kiện với query
func scoreEvent(query string, ev dto.EventSummary, cmProvince *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	if category := parseEventCategory(normalizedQuery); category != "" && category == ev.Category {
		score += 20
	}

	normalizedName := normalizeInput(ev.Name)
	if strings.Contains(normalizedName, normalizedQuery) || strings.Contains(normalizedQuery, normalizedName) {
		score += 18
	} else if calculateSimilarity(normalizedQuery, normalizedName) > 0.7 {
		score += 10
	}

	if ev.Province != "" && cmProvince.Closest(normalizedQuery) == normalizeInput(ev.Province) {
		score += 13
	}

	score += scoreTags(normalizedQuery, ev.Tags)

	return score
}

func scoreTags(query string, tags []string) int {
	maxTagScore := 12
	tagScore := 0

	for _, tag := range tags {
		normalizedTag := normalizeInput(tag)
		similarity := calculateSimilarity(query, normalizedTag)
		if similarity > 0.7 || strings.Contains(query, normalizedTag) {
			tagScore += 4
			if tagScore >= maxTagScore {
				break
			}
		}
	}
	return tagScore
}

// SearchEvents chấm điểm song song và trả danh sách sự kiện khớp query,
// xếp theo điểm giảm dần
func SearchEvents(query string, events []dto.EventSummary) []dto.ScoredEvent {
	cmProvince := createMatcher(prepareProvinceList(events))

	scored := make([]dto.ScoredEvent, 0, len(events))
	scoreCh := make(chan dto.ScoredEvent, len(events))
	var wg sync.WaitGroup

	for _, ev := range events {
		wg.Add(1)
		go func(ev dto.EventSummary) {
			defer wg.Done()
			score := scoreEvent(query, ev, cmProvince)
			if score > 0 {
				scoreCh <- dto.ScoredEvent{Event: ev, Score: score}
			}
		}(ev)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredEvent := range scoreCh {
		scored = append(scored, scoredEvent)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
