package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotText(t *testing.T) {
	t.Run("extracted file text wins", func(t *testing.T) {
		r := Resume{
			Headline: "Backend developer",
			RawText:  "full extracted text",
		}
		assert.Equal(t, "full extracted text", r.SnapshotText())
	})

	t.Run("sections joined when no file text", func(t *testing.T) {
		r := Resume{
			Headline:   "Backend developer",
			Skills:     pq.StringArray{"Go", "SQL"},
			Education:  "B.Tech CSE",
			Projects:   "URL shortener",
			Experience: "Intern at Acme",
		}
		assert.Equal(t, "Backend developer\nGo, SQL\nB.Tech CSE\nURL shortener\nIntern at Acme", r.SnapshotText())
	})
}

func TestApplicationStatusValid(t *testing.T) {
	for _, s := range []ApplicationStatus{StatusApplied, StatusShortlisted, StatusRejected, StatusSelected} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ApplicationStatus("hired").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleCandidate.Valid())
	assert.True(t, RoleRecruiter.Valid())
	assert.False(t, Role("admin").Valid())
}
