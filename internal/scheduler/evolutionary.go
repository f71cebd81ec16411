package scheduler

// RepairStats summarizes one Repair run for logging/metrics.
type RepairStats struct {
	Iterations int
	FinalCost  float64
}

// repairParams mirror the reference tuning: a small window (n) used as the
// sigma re-evaluation period and averaging window, an initial sigma (whose
// integer part is the number of relocation candidates per iteration), a
// fixed number of outer runs, and a stagnation ceiling that ends each run
// after that many consecutive non-improving iterations.
const (
	repairN             = 3
	repairInitialSigma  = 2.0
	repairRunTimes      = 5
	repairMaxStagnation = 200
)

// Repair runs single-class relocation ("mutate ideal spot") repeatedly,
// adaptively raising or lowering how many candidates are tried per iteration
// (sigma) based on whether the last n iterations improved on the n before
// them. It never worsens the matrix: every relocation is accepted only if it
// strictly lowers total cost, otherwise the class stays where it was.
func Repair(ds *Dataset, m *Matrix, cm CostModel, rng *RNG) RepairStats {
	sigma := repairInitialSigma
	var costStats []float64
	iter := 0
	best := cm.Total(ds, m)

	for run := 0; run < repairRunTimes; run++ {
		stagnation := 0
		for stagnation < repairMaxStagnation {
			iter++
			improved := mutateIdealSpot(ds, m, cm, rng, sigma)
			cost := cm.Total(ds, m)
			costStats = append(costStats, cost)

			if improved && cost < best {
				best = cost
				stagnation = 0
			} else {
				stagnation++
			}

			if iter > 10*repairN && iter%repairN == 0 && len(costStats) >= 2*repairN {
				recent := average(costStats[len(costStats)-repairN:])
				older := average(costStats[len(costStats)-2*repairN : len(costStats)-repairN])
				if recent < older {
					sigma /= 0.85
				} else {
					sigma *= 0.85
				}
				if sigma < 1 {
					sigma = 1
				}
			}
		}
	}

	return RepairStats{Iterations: iter, FinalCost: best}
}

// mutateIdealSpot draws int(sigma) classes at random (at least one), so a
// higher sigma considers more candidates per call, and relocates each seated
// one to the free cell with the lowest total cost, provided that cost is
// strictly lower than before. A class is left in place if no cell improves
// on it; an unseated class is skipped.
func mutateIdealSpot(ds *Dataset, m *Matrix, cm CostModel, rng *RNG, sigma float64) bool {
	if len(ds.Classes) == 0 {
		return false
	}
	candidates := int(sigma)
	if candidates < 1 {
		candidates = 1
	}

	improvedAny := false
	for i := 0; i < candidates; i++ {
		c := ds.Classes[rng.Intn(len(ds.Classes))]
		if relocateIfBetter(ds, m, cm, c, rng) {
			improvedAny = true
		}
	}
	return improvedAny
}

func relocateIfBetter(ds *Dataset, m *Matrix, cm CostModel, c Class, rng *RNG) bool {
	old, ok := m.Placement(c.ID)
	if !ok {
		return false
	}
	before := cm.Total(ds, m)
	m.Remove(c.ID)

	candidateRows := candidateRowsFor(ds, m, c, rng)
	roomNames := candidateRoomNamesFor(ds, c)

	bestRow, bestRoom := -1, ""
	bestCost := before
	for _, row := range candidateRows {
		for _, room := range roomNames {
			if !m.IsFree(row, c.Duration, c.Group, c.Teacher, room) {
				continue
			}
			m.Place(c, row, room)
			cost := cm.Total(ds, m)
			m.Remove(c.ID)
			if cost < bestCost {
				bestCost = cost
				bestRow, bestRoom = row, room
			}
		}
	}

	if bestRow == -1 {
		m.Place(c, old.Row, old.Room)
		return false
	}
	m.Place(c, bestRow, bestRoom)
	return true
}

func candidateRowsFor(ds *Dataset, m *Matrix, c Class, rng *RNG) []int {
	if c.Kind == KindLab {
		var rows []int
		for _, day := range rng.Perm(daysPerWeek) {
			for _, w := range m.LabWindows() {
				rows = append(rows, day*m.SlotsPerDay()+w[0])
			}
		}
		return rows
	}
	var rows []int
	for _, day := range rng.Perm(daysPerWeek) {
		for s := 0; s < m.SlotsPerDay(); s++ {
			if m.validTeacherGroupRow(day*m.SlotsPerDay()+s, c.Duration) {
				rows = append(rows, day*m.SlotsPerDay()+s)
			}
		}
	}
	return rows
}

func candidateRoomNamesFor(ds *Dataset, c Class) []string {
	rooms := ds.Classrooms
	if c.Kind == KindLab {
		rooms = ds.Labs
	}
	names := make([]string, len(rooms))
	for i, r := range rooms {
		names[i] = r.Name
	}
	return names
}

func average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
