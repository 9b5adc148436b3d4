package statistics

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/remonromany/wpgenius/app/models"
	"github.com/remonromany/wpgenius/internal/pkg/cache"
	"github.com/remonromany/wpgenius/internal/pkg/database"
)

const (
	CacheKeyUsers         = "statistics:users:total"
	CacheKeyMessagesTotal = "statistics:messages:total"
	CacheKeyMessagesDaily = "statistics:messages:daily:%s" // Format with date YYYY-MM-DD
	CacheKeyImagesTotal   = "statistics:images:total"
	CacheExpiration       = 30 * time.Minute
)

// StatisticsData is the aggregate usage snapshot shown on the dashboard.
type StatisticsData struct {
	TotalUsers    int `json:"total_users"`
	TotalMessages int `json:"total_messages"`
	TodayMessages int `json:"today_messages"`
	TotalImages   int `json:"total_images"`
}

// UpdateStatisticsCache recomputes all statistics and stores them in the cache
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalUsers int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		log.Printf("Error counting total users: %v", err)
		return err
	}

	var totalMessages int64
	if err := db.Model(&models.Message{}).Count(&totalMessages).Error; err != nil {
		log.Printf("Error counting total messages: %v", err)
		return err
	}

	todayStart, todayEnd := todayRange()
	var todayMessages int64
	if err := db.Model(&models.Message{}).Where("created_at BETWEEN ? AND ?", todayStart, todayEnd).Count(&todayMessages).Error; err != nil {
		log.Printf("Error counting today's messages: %v", err)
		return err
	}

	var totalImages int64
	if err := db.Model(&models.GeneratedImage{}).Count(&totalImages).Error; err != nil {
		log.Printf("Error counting generated images: %v", err)
		return err
	}

	if err := cache.Set(CacheKeyUsers, strconv.FormatInt(totalUsers, 10), CacheExpiration); err != nil {
		log.Printf("Error caching total users: %v", err)
		return err
	}
	if err := cache.Set(CacheKeyMessagesTotal, strconv.FormatInt(totalMessages, 10), CacheExpiration); err != nil {
		log.Printf("Error caching total messages: %v", err)
		return err
	}
	if err := cache.Set(dailyMessagesKey(), strconv.FormatInt(todayMessages, 10), CacheExpiration); err != nil {
		log.Printf("Error caching today's messages: %v", err)
		return err
	}
	if err := cache.Set(CacheKeyImagesTotal, strconv.FormatInt(totalImages, 10), CacheExpiration); err != nil {
		log.Printf("Error caching generated images: %v", err)
		return err
	}

	log.Printf("Statistics updated in cache: Users: %d, Messages: %d, Today's Messages: %d, Images: %d",
		totalUsers, totalMessages, todayMessages, totalImages)

	return nil
}

// GetTotalUsers returns the total number of users from cache or database
func GetTotalUsers() int {
	return cachedCount(CacheKeyUsers, func(count *int64) error {
		return database.GetDB().Model(&models.User{}).Count(count).Error
	})
}

// GetTotalMessages returns the total number of chat messages from cache or database
func GetTotalMessages() int {
	return cachedCount(CacheKeyMessagesTotal, func(count *int64) error {
		return database.GetDB().Model(&models.Message{}).Count(count).Error
	})
}

// GetTodayMessages returns the number of chat messages sent today from cache or database
func GetTodayMessages() int {
	return cachedCount(dailyMessagesKey(), func(count *int64) error {
		todayStart, todayEnd := todayRange()
		return database.GetDB().Model(&models.Message{}).Where("created_at BETWEEN ? AND ?", todayStart, todayEnd).Count(count).Error
	})
}

// GetTotalImages returns the total number of generated images from cache or database
func GetTotalImages() int {
	return cachedCount(CacheKeyImagesTotal, func(count *int64) error {
		return database.GetDB().Model(&models.GeneratedImage{}).Count(count).Error
	})
}

// GetStatisticsData returns all statistics data as StatisticsData structure
func GetStatisticsData() StatisticsData {
	return StatisticsData{
		TotalUsers:    GetTotalUsers(),
		TotalMessages: GetTotalMessages(),
		TodayMessages: GetTodayMessages(),
		TotalImages:   GetTotalImages(),
	}
}

// cachedCount reads a counter from the cache, falling back to the database
// and refilling the cache on a miss.
func cachedCount(key string, countFn func(*int64) error) int {
	val, err := cache.Get(key)
	if err == nil {
		count, perr := strconv.ParseInt(val, 10, 64)
		if perr != nil {
			return 0
		}
		return int(count)
	}

	var count int64
	if err := countFn(&count); err != nil {
		log.Printf("Error counting for %s: %v", key, err)
		return 0
	}
	if err := cache.Set(key, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
		log.Printf("Error caching %s: %v", key, err)
	}
	return int(count)
}

func dailyMessagesKey() string {
	return fmt.Sprintf(CacheKeyMessagesDaily, time.Now().Format("2006-01-02"))
}

func todayRange() (time.Time, time.Time) {
	today := time.Now().Format("2006-01-02")
	todayStart, _ := time.Parse("2006-01-02", today)
	return todayStart, todayStart.Add(24 * time.Hour)
}
