package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllTableNames(t *testing.T) {
	type tabler interface{ TableName() string }

	var names []string
	for _, m := range All() {
		tm, ok := m.(tabler)
		if assert.True(t, ok) {
			names = append(names, tm.TableName())
		}
	}

	assert.Equal(t, []string{"gmail_connections", "podcasts", "podcast_jobs"}, names)
}
