package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// CoreAPIURL trả về base URL của core API đặt vé
func CoreAPIURL() string {
	url := os.Getenv("CORE_API_URL")
	if url == "" {
		url = "http://localhost:3000"
	}
	return url
}

// ServiceToken trả về token hệ thống dùng cho feed cảnh báo dashboard.
// Đọc lại từ env trên mỗi lần gọi, không cache.
func ServiceToken() string {
	return os.Getenv("CORE_API_SERVICE_TOKEN")
}
