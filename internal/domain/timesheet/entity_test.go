package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransition(t *testing.T) {
	allowed := map[Status][]Status{
		StatusDraft:           {StatusSubmitted},
		StatusSubmitted:       {StatusManagerApproved, StatusRejected},
		StatusManagerApproved: {StatusHRApproved, StatusRejected},
		StatusHRApproved:      {StatusExported},
		StatusRejected:        {StatusSubmitted},
		StatusExported:        {},
	}

	all := []Status{
		StatusDraft, StatusSubmitted, StatusManagerApproved,
		StatusHRApproved, StatusRejected, StatusExported,
	}

	for from, targets := range allowed {
		permitted := make(map[Status]bool, len(targets))
		for _, to := range targets {
			permitted[to] = true
		}
		for _, to := range all {
			assert.Equal(t, permitted[to], from.CanTransition(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestStatusRegenerable(t *testing.T) {
	assert.True(t, StatusDraft.Regenerable())
	assert.True(t, StatusRejected.Regenerable())

	assert.False(t, StatusSubmitted.Regenerable())
	assert.False(t, StatusManagerApproved.Regenerable())
	assert.False(t, StatusHRApproved.Regenerable())
	assert.False(t, StatusExported.Regenerable())
}
