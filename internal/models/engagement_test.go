package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveToggle(t *testing.T) {
	tests := []struct {
		name      string
		current   bool
		engage    bool
		wantNext  bool
		wantDelta int
	}{
		{"engage from off", false, true, true, 1},
		{"engage twice is a no-op", true, true, true, 0},
		{"disengage from on", true, false, false, -1},
		{"disengage twice is a no-op", false, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, delta := ResolveToggle(tt.current, tt.engage)
			assert.Equal(t, tt.wantNext, next)
			assert.Equal(t, tt.wantDelta, delta)
		})
	}
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, 0, ClampCount(-3))
	assert.Equal(t, 0, ClampCount(0))
	assert.Equal(t, 7, ClampCount(7))
}

func TestRoleHierarchy(t *testing.T) {
	assert.True(t, RoleSuperAdmin.AtLeast(RoleAdmin))
	assert.True(t, RoleAdmin.AtLeast(RoleUser))
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
	assert.False(t, RoleUser.AtLeast(RoleAdmin))
	assert.False(t, RoleAdmin.AtLeast(RoleSuperAdmin))

	// Malformed roles rank below every defined role.
	assert.False(t, Role("owner").AtLeast(RoleUser))
	assert.False(t, Role("owner").Valid())
	assert.True(t, RoleUser.Valid())
}
