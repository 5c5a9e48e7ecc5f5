package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotificationVisibleTo(t *testing.T) {
	student := uuid.New()
	recruiter := uuid.New()
	other := uuid.New()

	tests := []struct {
		name      string
		audience  string
		recipient *uuid.UUID
		accountID uuid.UUID
		role      Role
		want      bool
	}{
		{
			name:      "broadcast to all reaches a candidate",
			audience:  AudienceAll,
			accountID: student,
			role:      RoleCandidate,
			want:      true,
		},
		{
			name:      "broadcast to all reaches a recruiter",
			audience:  AudienceAll,
			accountID: recruiter,
			role:      RoleRecruiter,
			want:      true,
		},
		{
			name:      "students broadcast reaches a candidate",
			audience:  AudienceStudents,
			accountID: student,
			role:      RoleCandidate,
			want:      true,
		},
		{
			name:      "students broadcast hidden from a recruiter",
			audience:  AudienceStudents,
			accountID: recruiter,
			role:      RoleRecruiter,
			want:      false,
		},
		{
			name:      "students broadcast with recipient reaches that recruiter",
			audience:  AudienceStudents,
			recipient: &recruiter,
			accountID: recruiter,
			role:      RoleRecruiter,
			want:      true,
		},
		{
			name:      "recipient match reaches the named account",
			audience:  AudienceStudents,
			recipient: &student,
			accountID: student,
			role:      RoleCandidate,
			want:      true,
		},
		{
			name:      "recipient mismatch stays hidden from other recruiters",
			audience:  "",
			recipient: &student,
			accountID: other,
			role:      RoleRecruiter,
			want:      false,
		},
		{
			name:      "unset audience without recipient reaches nobody",
			audience:  "",
			accountID: student,
			role:      RoleCandidate,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Notification{
				ID:          uuid.New(),
				Title:       "t",
				Message:     "m",
				Audience:    tt.audience,
				RecipientID: tt.recipient,
			}
			assert.Equal(t, tt.want, n.VisibleTo(tt.accountID, tt.role))
		})
	}
}
