package dedupe

import (
	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/bloom"
	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/prom"
)

type Verdict int

const (
	Unique Verdict = iota
	PotentialDuplicate
)

func (v Verdict) String() string {
	if v == PotentialDuplicate {
		return "Potential Duplicate"
	}
	return "Unique Content"
}

// Action is the follow up for content with this verdict.
func (v Verdict) Action() string {
	if v == PotentialDuplicate {
		return "Flag for review."
	}
	return "Approved."
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func verdictOf(seen bool) Verdict {
	if seen {
		return PotentialDuplicate
	}
	return Unique
}

// Checker is the dedupe filter for a stream of posts, safe for concurrent use.
type Checker struct {
	filter        *bloom.SyncFilter
	expectedItems int
	fpProbability float64
}

// NewChecker returns a Checker sized for expectedItems unique posts at fpProbability.
func NewChecker(expectedItems int, fpProbability float64, opts ...bloom.Option) (*Checker, error) {
	f, err := bloom.NewSync(expectedItems, fpProbability, opts...)
	if err != nil {
		return nil, err
	}
	return &Checker{filter: f, expectedItems: expectedItems, fpProbability: fpProbability}, nil
}

// Check returns the verdict for post without recording it.
func (c *Checker) Check(post string) Verdict {
	prom.DedupeLookups.Inc()
	v := verdictOf(c.filter.Contains(post))
	if v == PotentialDuplicate {
		prom.DedupePotentialDuplicates.Inc()
	}
	return v
}

// Add records post as seen.
func (c *Checker) Add(post string) {
	prom.DedupeInserts.Inc()
	c.filter.Add(post)
}

// CheckAndSet returns the verdict for post and records it as seen.
func (c *Checker) CheckAndSet(post string) Verdict {
	prom.DedupeLookups.Inc()
	v := verdictOf(c.filter.CheckAndAdd(post))
	if v == PotentialDuplicate {
		prom.DedupePotentialDuplicates.Inc()
	} else {
		prom.DedupeInserts.Inc()
	}
	return v
}

// Stats describes the checker for reporting.
type Stats struct {
	ExpectedItems int     `json:"expected_items"`
	FPProbability float64 `json:"fp_probability"`
	Size          uint64  `json:"size"`
	HashCount     uint64  `json:"hash_count"`
	Bytes         uint64  `json:"bytes"`
	BitsSet       uint    `json:"bits_set"`
	FillRatio     float64 `json:"fill_ratio"`
}

func (c *Checker) Stats() Stats {
	params := c.filter.Params()
	return Stats{
		ExpectedItems: c.expectedItems,
		FPProbability: c.fpProbability,
		Size:          params.Size,
		HashCount:     params.HashCount,
		Bytes:         params.Bytes(),
		BitsSet:       c.filter.BitsSet(),
		FillRatio:     c.filter.FillRatio(),
	}
}
