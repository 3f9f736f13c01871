package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCronJobKey(t *testing.T) {
	got := CronJobKeyToString("monitor-fila", "5m0s")
	assert.Equal(t, `{"jobName":"monitor-fila","interval":"5m0s"}`, got)

	jobName, interval := ParseCronJobKey(got)
	assert.Equal(t, "monitor-fila", jobName)
	assert.Equal(t, "5m0s", interval)
}
