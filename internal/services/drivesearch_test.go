package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDrivePointID(t *testing.T) {
	t.Run("carries the full drive uuid", func(t *testing.T) {
		id := uuid.New()

		point := drivePointID(id)

		assert.Equal(t, id.String(), point.GetUuid())
	})

	t.Run("distinct drives get distinct points", func(t *testing.T) {
		a := drivePointID(uuid.New())
		b := drivePointID(uuid.New())

		assert.NotEqual(t, a.GetUuid(), b.GetUuid())
	})
}
