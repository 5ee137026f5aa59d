package redisstore

import "fmt"

const keyPrefix = "wordrack"

// gameKey returns the Redis key for a saved game.
func gameKey(uid string) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, uid)
}

// settingsKey returns the Redis key for the device settings blob. The
// engine is same-device so there is exactly one settings record.
func settingsKey() string {
	return fmt.Sprintf("%s:settings", keyPrefix)
}
