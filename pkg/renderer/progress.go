package renderer

import "github.com/df07/go-pathtracer/pkg/log"

// Progress observes a render. Increment is called once per completed row with
// the number of rows finished so far.
type Progress interface {
	Increment(rowsDone int)
}

// NopProgress ignores progress
type NopProgress struct{}

// Increment implements Progress
func (NopProgress) Increment(int) {}

// LogProgress logs every finished row at Debug level and every tenth of the
// image at Info level
type LogProgress struct {
	logger      log.Logger
	totalRows   int
	lastPercent int
}

// NewLogProgress creates a progress reporter for an image totalRows high
func NewLogProgress(logger log.Logger, totalRows int) *LogProgress {
	return &LogProgress{logger: logger, totalRows: totalRows}
}

// Increment implements Progress
func (p *LogProgress) Increment(rowsDone int) {
	remaining := p.totalRows - rowsDone
	p.logger.Debugf("scanlines remaining: %d", remaining)

	if p.totalRows <= 0 {
		return
	}
	percent := rowsDone * 100 / p.totalRows
	if percent/10 > p.lastPercent/10 {
		p.logger.Infof("%d%% complete", percent/10*10)
	}
	p.lastPercent = percent
}
