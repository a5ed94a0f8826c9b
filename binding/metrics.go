package binding

// Metrics receives binding activity. *metrics.PromMetrics implements it.
type Metrics interface {
	IncPass(format, result string)
	IncClassified(kind string)
	IncPasteRecheck()
}

type nopMetrics struct{}

func (nopMetrics) IncPass(string, string) {}
func (nopMetrics) IncClassified(string)   {}
func (nopMetrics) IncPasteRecheck()       {}
