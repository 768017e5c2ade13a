package surprise

import (
	"fmt"
	"time"
)

const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
)

// Plan describes what a paid surprise may contain. A zero Access means the
// page never expires.
type Plan struct {
	ID         string
	Name       string
	Price      string
	MaxPhotos  int
	AllowVideo bool
	Access     time.Duration
}

var plans = []Plan{
	{ID: PlanBasic, Name: "Básico", Price: "R$29", MaxPhotos: 3, AllowVideo: false, Access: 30 * 24 * time.Hour},
	{ID: PlanPremium, Name: "Premium", Price: "R$49", MaxPhotos: 7, AllowVideo: true},
}

// Plans returns the catalog in display order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// LookupPlan finds a plan by id.
func LookupPlan(id string) (Plan, error) {
	for _, p := range plans {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("%w: %q", ErrUnknownPlan, id)
}

// AccessibleAt reports whether a page activated at since can still be
// viewed at now.
func (p Plan) AccessibleAt(since, now time.Time) bool {
	if p.Access == 0 {
		return true
	}
	return now.Before(since.Add(p.Access))
}
