package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserSerializeOmitsPassword(t *testing.T) {
	u := User{Email: "leia@rebellion.org", Password: "hunter2", IsActive: true}
	u.ID = 3

	out := u.Serialize()
	assert.Equal(t, uint(3), out["id"])
	assert.Equal(t, "leia@rebellion.org", out["email"])
	assert.NotContains(t, out, "password")
}

func TestSerializeAllEmptyIsNotNil(t *testing.T) {
	out := SerializeAll([]*Planet{})
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSerializeAllKeepsOrder(t *testing.T) {
	a := &Person{Name: "Luke Skywalker"}
	a.ID = 1
	b := &Person{Name: "Leia Organa"}
	b.ID = 2

	out := SerializeAll([]*Person{a, b})
	assert.Len(t, out, 2)
	assert.Equal(t, "Luke Skywalker", out[0]["name"])
	assert.Equal(t, "Leia Organa", out[1]["name"])
}
