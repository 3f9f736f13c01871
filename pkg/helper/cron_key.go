package helper

import (
	"encoding/json"
)

// CronJobKey model, serialized form is used as scheduler handler pattern
type CronJobKey struct {
	JobName  string `json:"jobName"`
	Interval string `json:"interval"`
}

// String implement stringer
func (c CronJobKey) String() string {
	b, _ := json.Marshal(c)
	return string(b)
}

// CronJobKeyToString helper, interval must be a valid time duration string (example: 30s, 5m)
func CronJobKeyToString(jobName, interval string) string {
	return CronJobKey{
		JobName: jobName, Interval: interval,
	}.String()
}

// ParseCronJobKey helper
func ParseCronJobKey(str string) (jobName, interval string) {
	var cronKey CronJobKey
	json.Unmarshal([]byte(str), &cronKey)
	return cronKey.JobName, cronKey.Interval
}
