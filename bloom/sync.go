package bloom

import "sync"

// SyncFilter guards a Filter for use by concurrent writers.
// Lookups share a read lock, additions are serialised.
type SyncFilter struct {
	mu     sync.RWMutex
	filter *Filter
}

// NewSync returns an empty SyncFilter sized for itemsCount items at fpProbability.
func NewSync(itemsCount int, fpProbability float64, opts ...Option) (*SyncFilter, error) {
	f, err := New(itemsCount, fpProbability, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncFilter{filter: f}, nil
}

func (s *SyncFilter) Size() uint64 { return s.filter.Size() }

func (s *SyncFilter) HashCount() uint64 { return s.filter.HashCount() }

func (s *SyncFilter) Params() Params { return s.filter.Params() }

func (s *SyncFilter) Add(item string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Add(item)
}

func (s *SyncFilter) Contains(item string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter.Contains(item)
}

// CheckAndAdd is atomic, so of two callers racing on the same new item exactly one sees it as absent.
func (s *SyncFilter) CheckAndAdd(item string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.CheckAndAdd(item)
}

func (s *SyncFilter) BitsSet() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter.BitsSet()
}

func (s *SyncFilter) FillRatio() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter.FillRatio()
}
