package dto

import "testing"

func TestParseNotificationsPayloadShapes(t *testing.T) {
	t.Run("mảng trần", func(t *testing.T) {
		payload := `[{"id":1,"message":"a","isRead":false},{"id":2,"message":"b","isRead":true}]`
		list, err := ParseNotificationsPayload([]byte(payload))
		if err != nil {
			t.Fatalf("lỗi không mong muốn: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("len = %d, muốn 2", len(list))
		}
		if list[0].ID != 1 || list[1].IsRead != true {
			t.Errorf("parse sai nội dung: %+v", list)
		}
	})

	t.Run("object bọc notifications", func(t *testing.T) {
		payload := `{"notifications":[{"id":5,"message":"x","isRead":false}]}`
		list, err := ParseNotificationsPayload([]byte(payload))
		if err != nil {
			t.Fatalf("lỗi không mong muốn: %v", err)
		}
		if len(list) != 1 || list[0].ID != 5 {
			t.Errorf("parse sai: %+v", list)
		}
	})

	t.Run("object đơn lẻ", func(t *testing.T) {
		payload := `{"id":9,"message":"một thông báo","isRead":false}`
		list, err := ParseNotificationsPayload([]byte(payload))
		if err != nil {
			t.Fatalf("lỗi không mong muốn: %v", err)
		}
		if len(list) != 1 || list[0].ID != 9 {
			t.Errorf("parse sai: %+v", list)
		}
	})

	t.Run("notifications rỗng", func(t *testing.T) {
		list, err := ParseNotificationsPayload([]byte(`{"notifications":[]}`))
		if err != nil {
			t.Fatalf("lỗi không mong muốn: %v", err)
		}
		if len(list) != 0 {
			t.Errorf("len = %d, muốn 0", len(list))
		}
	})

	t.Run("null", func(t *testing.T) {
		list, err := ParseNotificationsPayload([]byte(`null`))
		if err != nil {
			t.Fatalf("lỗi không mong muốn: %v", err)
		}
		if len(list) != 0 {
			t.Errorf("len = %d, muốn 0", len(list))
		}
	})

	t.Run("shape không nhận ra", func(t *testing.T) {
		if _, err := ParseNotificationsPayload([]byte(`"chuỗi lạ"`)); err == nil {
			t.Error("muốn lỗi parse cho shape không nhận ra")
		}
	})
}

func TestCountUnread(t *testing.T) {
	list := []NotificationView{
		{ID: 1, IsRead: false},
		{ID: 2, IsRead: true},
		{ID: 3, IsRead: false},
	}
	if got := CountUnread(list); got != 2 {
		t.Errorf("CountUnread = %d, muốn 2", got)
	}
	if got := CountUnread(nil); got != 0 {
		t.Errorf("CountUnread(nil) = %d, muốn 0", got)
	}
}
