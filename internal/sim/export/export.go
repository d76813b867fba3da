// Package export flattens a frozen park state into a fixed-layout legacy
// snapshot ready for sv6.Saver.
package export

import (
	"errors"
	"fmt"
	"io"
	"log"

	"parksave.dev/internal/persistence/sv6"
	"parksave.dev/internal/sim/export/fixup"
	"parksave.dev/internal/sim/park"
)

var (
	ErrSpriteCycle   = errors.New("sprite chain contains a cycle")
	ErrDuplicateRide = errors.New("duplicate ride id")
)

// CycleError reports where a sprite chain loops back on itself.
type CycleError struct {
	List  string
	Index int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: list %s loops at sprite %d", ErrSpriteCycle, e.List, e.Index)
}

func (e *CycleError) Unwrap() error { return ErrSpriteCycle }

var listNames = [park.NumLists]string{"null", "train_head", "peep", "misc", "litter", "vehicle"}

type Exporter struct {
	// RemoveTracklessRides nulls rides that have no track placed.
	RemoveTracklessRides bool
	// PackObjects embeds the data of packable objects in the save.
	PackObjects bool
	// GameVersion overrides the build stamp; zero means sv6.GameVersion.
	GameVersion uint32
	Logger      *log.Logger
}

func (x *Exporter) logger() *log.Logger {
	if x.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return x.Logger
}

// Export builds a snapshot of st. The only change made to st is relinking
// null sprites that fell out of the null list. A cycle in either sprite
// chain aborts the export with a *CycleError.
func (x *Exporter) Export(st *park.State) (*sv6.S6, error) {
	logger := x.logger()
	if q, at, found := st.SpatialCycle(); found {
		return nil, &CycleError{List: fmt.Sprintf("spatial[%d]", q), Index: at}
	}
	if l, at, found := st.ListCycle(); found {
		name := fmt.Sprintf("list[%d]", l)
		if l < len(listNames) {
			name = listNames[l]
		}
		return nil, &CycleError{List: name, Index: at}
	}
	if n := st.FixDisjointNull(); n > 0 {
		logger.Printf("export: relinked %d disjoint null sprites", n)
	}

	s := sv6.New()
	steps := []struct {
		name string
		fn   func(*sv6.S6, *park.State) error
	}{
		{"scenario info", x.gatherInfo},
		{"objects", x.gatherObjects},
		{"clock", gatherClock},
		{"tiles", gatherTiles},
		{"sprites", x.gatherSprites},
		{"park", gatherPark},
		{"finance", gatherFinance},
		{"research", gatherResearch},
		{"company", x.gatherCompany},
		{"rides", gatherRides},
		{"environment", gatherEnvironment},
	}
	for _, step := range steps {
		if err := step.fn(s, st); err != nil {
			return nil, fmt.Errorf("export %s: %w", step.name, err)
		}
	}

	if x.RemoveTracklessRides {
		if n := fixup.RemoveTracklessRides(s); n > 0 {
			logger.Printf("export: removed %d trackless rides", n)
		}
	}
	if n := fixup.FixGhosts(s); n > 0 {
		logger.Printf("export: removed %d ghost elements", n)
	}
	fixup.ConvertStrings(s)
	return s, nil
}
