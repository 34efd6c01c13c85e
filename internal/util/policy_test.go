package util

import (
	"testing"

	"eduflow_backend/internal/model"
)

func TestCanWrite(t *testing.T) {
	tests := []struct {
		name      string
		subjectID uint
		role      model.UserRole
		ownerID   uint
		want      bool
	}{
		{"owner educator can write", 1, model.RoleEducator, 1, true},
		{"other educator cannot write", 2, model.RoleEducator, 1, false},
		{"admin can write any resource", 3, model.RoleAdmin, 1, true},
		{"admin can write own resource", 3, model.RoleAdmin, 3, true},
		{"student cannot write someone else's", 4, model.RoleStudent, 1, false},
		{"student can write own", 4, model.RoleStudent, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanWrite(tt.subjectID, tt.role, tt.ownerID); got != tt.want {
				t.Errorf("CanWrite(%d, %s, %d) = %v, want %v", tt.subjectID, tt.role, tt.ownerID, got, tt.want)
			}
		})
	}
}
