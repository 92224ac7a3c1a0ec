package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampFormats(t *testing.T) {
	date, clock := Stamp()

	parsed, err := time.Parse("02/01/2006", date)
	require.NoError(t, err)
	assert.Equal(t, time.Now().Year(), parsed.Year())

	assert.Regexp(t, regexp.MustCompile(`^(0[1-9]|1[0-2]):[0-5][0-9] (AM|PM)$`), clock)
}
