package parallel

// MinBandRows is the smallest band worth handing to a worker.
const MinBandRows = 16

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Bands splits height rows into at most n contiguous bands of near-equal size.
// No band is shorter than MinBandRows unless height itself is.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, height/MinBandRows))

	bands := make([]Band, n)
	base, extra := height/n, height%n
	y := 0
	for i := range n {
		rows := base
		if i < extra {
			rows++
		}
		bands[i] = Band{Y0: y, Y1: y + rows}
		y += rows
	}
	return bands
}

// Rows calls fn over [0, height) split into bands. With a nil or closed pool,
// or when the work fits in one band, fn runs once on the calling goroutine.
// Rows returns after every band has completed.
func Rows(p *WorkerPool, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}

	bands := Bands(height, p.Workers())
	if len(bands) == 1 || !p.IsRunning() {
		fn(0, height)
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Y0, b.Y1) }
	}
	p.ExecuteAll(work)
}
