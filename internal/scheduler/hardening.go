package scheduler

import "math"

const (
	hardeningIterations  = 2500
	hardeningInitialTemp = 0.5
	hardeningCooling     = 0.99
)

// HardeningStats summarizes one Harden run.
type HardeningStats struct {
	Iterations int
	Accepted   int
	FinalCost  float64
}

// Harden runs simulated annealing over the repaired matrix: each iteration
// proposes relocating one random class, accepts it outright if it lowers
// cost, and otherwise accepts it anyway with Metropolis probability
// exp((curr-new)/t) so the search can still escape local minima early on,
// before the temperature has cooled. Rejected proposals are rolled back via
// an undo log rather than a full matrix clone — hardenNaive below is the
// full-clone equivalent, kept only to verify the undo log behaves
// identically under test.
func Harden(ds *Dataset, m *Matrix, cm CostModel, rng *RNG) HardeningStats {
	temp := hardeningInitialTemp
	curr := cm.Total(ds, m)
	accepted := 0

	for i := 0; i < hardeningIterations; i++ {
		if len(ds.Classes) == 0 {
			break
		}
		c := ds.Classes[rng.Intn(len(ds.Classes))]
		old, ok := m.Placement(c.ID)
		if !ok {
			temp *= hardeningCooling
			continue
		}

		row, room, found := randomCandidateCell(ds, m, c, rng)
		if !found {
			temp *= hardeningCooling
			continue
		}

		m.Remove(c.ID)
		m.Place(c, row, room)
		next := cm.Total(ds, m)

		accept := next < curr || rng.Float64() <= math.Exp((curr-next)/math.Max(temp, 1e-9))
		if accept {
			curr = next
			accepted++
		} else {
			m.Remove(c.ID)
			m.Place(c, old.Row, old.Room)
		}
		temp *= hardeningCooling
	}

	return HardeningStats{Iterations: hardeningIterations, Accepted: accepted, FinalCost: curr}
}

func randomCandidateCell(ds *Dataset, m *Matrix, c Class, rng *RNG) (int, string, bool) {
	rows := candidateRowsFor(ds, m, c, rng)
	roomNames := candidateRoomNamesFor(ds, c)
	if len(rows) == 0 || len(roomNames) == 0 {
		return 0, "", false
	}
	row := rows[rng.Intn(len(rows))]
	room := roomNames[rng.Intn(len(roomNames))]
	old, placed := m.Remove(c.ID)
	free := m.IsFree(row, c.Duration, c.Group, c.Teacher, room)
	if placed {
		m.Place(c, old.Row, old.Room)
	}
	return row, room, free
}

// hardenNaive is a debug-only equivalent of Harden that snapshots the full
// matrix via Clone before each proposal instead of tracking a single undo
// entry. It exists to cross-check the undo-log path, not for production use.
func hardenNaive(ds *Dataset, m *Matrix, cm CostModel, rng *RNG) HardeningStats {
	temp := hardeningInitialTemp
	curr := cm.Total(ds, m)
	accepted := 0

	for i := 0; i < hardeningIterations; i++ {
		if len(ds.Classes) == 0 {
			break
		}
		snapshot := m.Clone()
		c := ds.Classes[rng.Intn(len(ds.Classes))]
		if _, ok := m.Placement(c.ID); !ok {
			temp *= hardeningCooling
			continue
		}
		row, room, found := randomCandidateCell(ds, m, c, rng)
		if !found {
			temp *= hardeningCooling
			continue
		}
		m.Remove(c.ID)
		m.Place(c, row, room)
		next := cm.Total(ds, m)

		accept := next < curr || rng.Float64() <= math.Exp((curr-next)/math.Max(temp, 1e-9))
		if accept {
			curr = next
			accepted++
		} else {
			*m = *snapshot
		}
		temp *= hardeningCooling
	}

	return HardeningStats{Iterations: hardeningIterations, Accepted: accepted, FinalCost: curr}
}
