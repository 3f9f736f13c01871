package helper

import (
	"encoding/json"
	"net/url"
	"os"
	"strconv"
	"time"
)

// ToBytes convert all types to bytes
func ToBytes(i interface{}) (b []byte) {
	switch t := i.(type) {
	case []byte:
		b = t
	case string:
		b = []byte(t)
	default:
		b, _ = json.Marshal(i)
	}
	return
}

// StringInSlice function for checking whether string in slice
func StringInSlice(str string, list []string) bool {
	for _, v := range list {
		if v == str {
			return true
		}
	}
	return false
}

// MaskingPasswordURL for hide plain text password from given URL format
func MaskingPasswordURL(stringURL string) string {
	u, err := url.Parse(stringURL)
	if err != nil {
		return stringURL
	}
	pass, ok := u.User.Password()
	if pass == "" || !ok {
		return stringURL
	}

	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}

// ToUTC convert only location to UTC
func ToUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond(), time.UTC)
}

// ParseEnvInt parse environment variable to int, fallback to default value
func ParseEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// ParseEnvBool parse environment variable to bool, fallback to false
func ParseEnvBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

// ParseEnvDuration parse environment variable to duration, fallback to default value
func ParseEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}
