package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() {
		Version, Commit, BuildDate = origVersion, origCommit, origDate
	})

	assert.Equal(t, "dev (commit: unknown, built: unknown)", String())

	Version, Commit, BuildDate = "v1.2.0", "abc1234", "2026-10-19T00:00:00Z"
	assert.Equal(t, "v1.2.0 (commit: abc1234, built: 2026-10-19T00:00:00Z)", String())
}
