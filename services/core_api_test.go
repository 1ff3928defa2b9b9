package services

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vinh-tho/Ticket-App-sub001/errors"

	"github.com/goccy/go-json"
)

func TestFetchMyOrdersSendsBearer(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Write([]byte(`{"data":[{"id":1,"status":"confirmed"}]}`))
	}))
	defer server.Close()

	api := NewCoreAPI(server.URL)
	orders, err := api.FetchMyOrders("abc123")
	if err != nil {
		t.Fatalf("lỗi không mong muốn: %v", err)
	}

	if gotAuth != "Bearer abc123" {
		t.Errorf("Authorization = %q, muốn %q", gotAuth, "Bearer abc123")
	}
	if gotPath != "/orders/my" {
		t.Errorf("path = %q, muốn %q", gotPath, "/orders/my")
	}
	if len(orders) != 1 || orders[0].ID.String() != "1" {
		t.Errorf("orders = %+v", orders)
	}
}

func TestFetchMyOrdersUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	api := NewCoreAPI(server.URL)
	_, err := api.FetchMyOrders("abc123")
	if err == nil {
		t.Fatal("muốn lỗi khi upstream trả 502")
	}
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeUpstreamStatus {
		t.Errorf("err = %v, muốn AppError với code UPSTREAM_STATUS", err)
	}
}

func TestFetchEventDetailInfoNoAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("endpoint event detail không được gửi Authorization, có %q", r.Header.Get("Authorization"))
		}
		if r.URL.Path != "/event-details/7" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"id":7,"name":"Suất tối","location":"Nhà hát lớn"}`))
	}))
	defer server.Close()

	api := NewCoreAPI(server.URL)
	info, err := api.FetchEventDetailInfo(7)
	if err != nil {
		t.Fatalf("lỗi không mong muốn: %v", err)
	}
	if info.Name != "Suất tối" || info.Location != "Nhà hát lớn" {
		t.Errorf("info = %+v", info)
	}
}

func TestMarkNotificationReadPatchPath(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))
	defer server.Close()

	api := NewCoreAPI(server.URL)
	if err := api.MarkNotificationRead("tok", 15); err != nil {
		t.Fatalf("lỗi không mong muốn: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/notifications/mark-read/15" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
}

func TestRegisterPushTokenBody(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
	}))
	defer server.Close()

	api := NewCoreAPI(server.URL)
	if err := api.RegisterPushToken("tok", "ExponentPushToken[abc]"); err != nil {
		t.Fatalf("lỗi không mong muốn: %v", err)
	}
	if gotBody["expoPushToken"] != "ExponentPushToken[abc]" {
		t.Errorf("body = %v", gotBody)
	}
}

func TestFetchEventsBothShapes(t *testing.T) {
	t.Run("mảng trần", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":1,"name":"Concert"}]`))
		}))
		defer server.Close()

		events, err := NewCoreAPI(server.URL).FetchEvents()
		if err != nil || len(events) != 1 {
			t.Fatalf("events = %+v, err = %v", events, err)
		}
	})

	t.Run("bọc trong data", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[{"id":2,"name":"Giải đấu"}]}`))
		}))
		defer server.Close()

		events, err := NewCoreAPI(server.URL).FetchEvents()
		if err != nil || len(events) != 1 || events[0].ID != 2 {
			t.Fatalf("events = %+v, err = %v", events, err)
		}
	})
}
