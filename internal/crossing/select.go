package crossing

// Select folds over crossings, tracking the best crossing for each metric.
// Ties keep the crossing found first. An empty collection is a
// *NoCrossingError.
func Select(crossings []Crossing) (Result, error) {
	if len(crossings) == 0 {
		return Result{}, &NoCrossingError{}
	}

	res := Result{Central: crossings[0], Wire: crossings[0], Count: len(crossings)}
	for _, c := range crossings[1:] {
		if better(c.Central, c, res.Central.Central, res.Central) {
			res.Central = c
		}
		if better(c.WireDistance, c, res.Wire.WireDistance, res.Wire) {
			res.Wire = c
		}
	}
	return res, nil
}

func better(v int, c Crossing, bestV int, best Crossing) bool {
	if v != bestV {
		return v < bestV
	}
	return c.before(best)
}
