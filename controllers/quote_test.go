package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hustlerkashish/G-block-society/models"
)

func TestComputeQuote(t *testing.T) {
	tests := []struct {
		name              string
		isPaid            bool
		price             float64
		attendees         int
		familyMemberCount int
		want              float64
	}{
		{"paid event charges per attendee", true, 500, 2, 3, 1000},
		{"paid event single attendee", true, 250, 1, 1, 250},
		{"paid event ignores family count", true, 100, 5, 10, 500},
		{"free event within family limit", false, 0, 3, 3, 0},
		{"free event below family limit", false, 0, 1, 4, 0},
		{"free event charges extras only", false, 0, 5, 3, 200},
		{"free event one extra", false, 0, 2, 1, 100},
		{"free event price field is irrelevant", false, 999, 2, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &models.Event{IsPaid: tt.isPaid, Price: tt.price}
			got := ComputeQuote(event, tt.attendees, tt.familyMemberCount)
			assert.Equal(t, tt.want, got)
		})
	}
}
