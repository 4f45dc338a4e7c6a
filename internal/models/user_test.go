package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIsAdmin(t *testing.T) {
	cases := []struct {
		name string
		user User
		want bool
	}{
		{"patient", User{Role: RolePatient}, false},
		{"provider", User{Role: RoleProvider}, false},
		{"admin role", User{Role: RoleAdmin}, true},
		{"superuser patient", User{Role: RolePatient, IsSuperuser: true}, true},
		{"superuser admin", User{Role: RoleAdmin, IsSuperuser: true}, true},
		{"empty role", User{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.user.IsAdmin())
		})
	}
}

func TestUserFullName(t *testing.T) {
	assert.Equal(t, "Alice Smith", (&User{FirstName: "Alice", LastName: "Smith"}).FullName())
	assert.Equal(t, "Alice", (&User{FirstName: "Alice"}).FullName())
	assert.Equal(t, "Smith", (&User{LastName: "Smith"}).FullName())
	assert.Equal(t, "", (&User{}).FullName())
}
