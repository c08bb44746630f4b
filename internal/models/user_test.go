package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressEqual(t *testing.T) {
	a := Address{
		Name:    "Jane Doe",
		Phone:   "5550001111",
		Pincode: "110001",
		Street:  "12 Market Road",
		City:    "Delhi",
		State:   "Delhi",
		Country: "India",
	}

	b := a
	assert.True(t, a.Equal(b))

	b.Street = "13 Market Road"
	assert.False(t, a.Equal(b))

	c := a
	c.Phone = "5550002222"
	assert.False(t, a.Equal(c))
}
