package planner

import (
	"github.com/festperfect/festperfect/internal/event_bus"
	"github.com/festperfect/festperfect/pkg/festival"
	log "github.com/sirupsen/logrus"
)

// RegisterConflictAudit logs the per-day must-see conflict count after every
// lineup mutation. Purely observational; handler errors on the bus never
// affect the mutation itself.
func RegisterConflictAudit(bus *event_bus.EventBus) {
	bus.Subscribe(event_bus.FestivalUpdated, func(e event_bus.Event) error {
		f, ok := e.Data.(festival.Festival)
		if !ok {
			return nil
		}
		for _, day := range f.Days {
			daySlots := f.ArtistsForDay(day.ID)
			conflicts := 0
			for _, slot := range daySlots {
				if festival.HasConflict(slot, daySlots) {
					conflicts++
				}
			}
			if conflicts > 0 {
				log.Infof("festival %s day %s has %d conflicting must-see picks", f.ID, day.ID, conflicts)
			} else {
				log.Debugf("festival %s day %s has no conflicts", f.ID, day.ID)
			}
		}
		return nil
	})
}
