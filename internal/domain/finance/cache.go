package finance

// OverviewCache holds derived per-month overviews. Implementations must be
// safe for concurrent use. The service clears the whole cache on every write
// that can affect derivation, so cached entries are never stale relative to
// the ledgers.
type OverviewCache interface {
	Get(month string) (Overview, bool)
	Set(month string, overview Overview)
	Clear()
}

type noopOverviewCache struct{}

func (noopOverviewCache) Get(string) (Overview, bool) { return Overview{}, false }

func (noopOverviewCache) Set(string, Overview) {}

func (noopOverviewCache) Clear() {}
