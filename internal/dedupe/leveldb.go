package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// DiskBackend spills deduped canonical forms to a disk-backed hybrid map
// instead of holding them all in memory, for large `braiddemo -census`
// runs.
type DiskBackend struct {
	storage *hybrid.HybridMap
}

func NewDiskBackend() *DiskBackend {
	l := &DiskBackend{}
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		gologger.Fatal().Msgf("failed to create temp dir for braidcrypt dedupe got: %v", err)
	}
	l.storage = db
	return l
}

func (l *DiskBackend) Upsert(elem string) {
	if err := l.storage.Set(elem, nil); err != nil {
		gologger.Error().Msgf("dedupe: disk backend: got %v while writing %v", err, elem)
	}
}

func (l *DiskBackend) IterCallback(callback func(elem string)) {
	l.storage.Scan(func(k, _ []byte) error {
		callback(string(k))
		return nil
	})
}

func (l *DiskBackend) Cleanup() {
	_ = l.storage.Close()
}
