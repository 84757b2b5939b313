package redis

import "fmt"

// Key prefix for all credential data
const keyPrefix = "spsgame"

// userKey returns the Redis key for a UserRecord
func userKey(username string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, username)
}

// userOrderKey returns the Redis key for the LIST preserving registration order
func userOrderKey() string {
	return fmt.Sprintf("%s:users", keyPrefix)
}
