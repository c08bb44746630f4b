package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRatingOf(t *testing.T) {
	assert.Zero(t, AverageRatingOf(nil))
	assert.Zero(t, AverageRatingOf([]Review{}))

	reviews := []Review{{Rating: 5}, {Rating: 4}, {Rating: 3}}
	assert.InDelta(t, 4.0, AverageRatingOf(reviews), 1e-9)

	reviews = append(reviews, Review{Rating: 1})
	assert.InDelta(t, 3.25, AverageRatingOf(reviews), 1e-9)
}
