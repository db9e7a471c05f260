// internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "centralcelular_backend/internals/features/users/auth/model"
)

// StartTokenCleanup sweeps expired blacklist rows and stale OTP codes
// once an hour. Neither table is read after expiry, the sweep only keeps
// them from growing without bound.
func StartTokenCleanup(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			if err := db.Unscoped().
				Where("expired_at < ?", now).
				Delete(&authModel.TokenBlacklist{}).Error; err != nil {
				log.Println("[ERROR] blacklist sweep:", err)
			}

			if err := db.
				Where("expires_at < ? OR used = true", now.Add(-24*time.Hour)).
				Delete(&authModel.OtpCode{}).Error; err != nil {
				log.Println("[ERROR] otp sweep:", err)
			}
		}
	}()
}
