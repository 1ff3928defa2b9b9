package services

import (
	"testing"

	"github.com/Vinh-tho/Ticket-App-sub001/dto"
)

func TestMergeSearchFilters(t *testing.T) {
	oldPrice := 500000.0
	oldLimit := 5

	old := &dto.EventSearchFilters{
		Query:    "ca nhạc",
		Province: "Hà Nội",
		MaxPrice: &oldPrice,
		Limit:    &oldLimit,
	}

	t.Run("field mới rỗng giữ giá trị cũ", func(t *testing.T) {
		next := &dto.EventSearchFilters{Category: "music"}
		merged := MergeSearchFilters(old, next)
		if merged.Query != "ca nhạc" {
			t.Errorf("Query = %q, muốn giữ %q", merged.Query, "ca nhạc")
		}
		if merged.Category != "music" {
			t.Errorf("Category = %q, muốn %q", merged.Category, "music")
		}
		if merged.Province != "Hà Nội" {
			t.Errorf("Province = %q, muốn giữ %q", merged.Province, "Hà Nội")
		}
		if merged.MaxPrice == nil || *merged.MaxPrice != oldPrice {
			t.Errorf("MaxPrice = %v, muốn giữ %v", merged.MaxPrice, oldPrice)
		}
	})

	t.Run("field mới thắng field cũ", func(t *testing.T) {
		newPrice := 100000.0
		next := &dto.EventSearchFilters{Query: "bóng đá", MaxPrice: &newPrice}
		merged := MergeSearchFilters(old, next)
		if merged.Query != "bóng đá" {
			t.Errorf("Query = %q, muốn %q", merged.Query, "bóng đá")
		}
		if merged.MaxPrice == nil || *merged.MaxPrice != newPrice {
			t.Errorf("MaxPrice = %v, muốn %v", merged.MaxPrice, newPrice)
		}
	})

	t.Run("không có filter cũ", func(t *testing.T) {
		next := &dto.EventSearchFilters{Query: "workshop"}
		merged := MergeSearchFilters(nil, next)
		if merged.Query != "workshop" {
			t.Errorf("Query = %q", merged.Query)
		}
	})
}
