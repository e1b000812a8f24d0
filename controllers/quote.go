package controllers

import "github.com/hustlerkashish/G-block-society/models"

// ExtraAttendeeFee is charged per attendee above the free-tier family
// member count at free events (currency units).
const ExtraAttendeeFee = 100

// ComputeQuote prices a booking request. Paid events charge the ticket
// price per attendee. Free events charge only for attendees beyond the
// resident's registered family member count.
func ComputeQuote(event *models.Event, attendees, familyMemberCount int) float64 {
	if event.IsPaid {
		return event.Price * float64(attendees)
	}
	extra := attendees - familyMemberCount
	if extra <= 0 {
		return 0
	}
	return ExtraAttendeeFee * float64(extra)
}
