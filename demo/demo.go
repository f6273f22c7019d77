package demo

import (
	"fmt"
	"io"

	bitsbloom "github.com/bits-and-blooms/bloom/v3"
	"github.com/dustin/go-humanize"

	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/bloom"
	st "github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/settings"
)

type membership interface {
	Contains(item string) bool
}

// prodFilter adapts the bits-and-blooms filter used for comparison.
type prodFilter struct {
	f *bitsbloom.BloomFilter
}

func (p prodFilter) Contains(item string) bool {
	return p.f.TestString(item)
}

func checkPost(w io.Writer, filter membership, post string) {
	fmt.Fprintf(w, "Checking post: %q\n", post)
	if filter.Contains(post) {
		fmt.Fprintln(w, " -> Result: Potential Duplicate. Flag for review.")
	} else {
		fmt.Fprintln(w, " -> Result: Unique Content. Approved.")
	}
	fmt.Fprintln(w)
}

// RunCustom runs the scenario against this repository's filter.
func RunCustom(w io.Writer, s *Scenario) error {
	fmt.Fprintln(w, "--- 1. UniqueStream Demo (Custom Implementation) ---")

	hasher, ok := bloom.HasherByName(s.Filter.Hash)
	if !ok {
		return fmt.Errorf("unknown hash %q", s.Filter.Hash)
	}
	f, err := bloom.New(s.Filter.ExpectedItems, s.Filter.FPProbability, bloom.WithHasher(hasher))
	if err != nil {
		return err
	}
	st.Logger.Debug().Uint64("size", f.Size()).Uint64("hash_count", f.HashCount()).Str("hash", s.Filter.Hash).Msg("demo filter created")

	fmt.Fprintf(w, "Filter configured for %s items.\n", humanize.Comma(int64(s.Filter.ExpectedItems)))
	fmt.Fprintf(w, "Memory size (m): %s bits\n", humanize.Comma(int64(f.Size())))
	fmt.Fprintf(w, "Hash functions (k): %d\n\n", f.HashCount())

	fmt.Fprintln(w, "Adding initial posts to the stream...")
	for _, post := range s.Add {
		f.Add(post)
	}
	fmt.Fprintln(w, "-------------------------------------------")
	fmt.Fprintln(w)

	for _, post := range s.Check {
		checkPost(w, f, post)
	}
	return nil
}

// RunProduction runs the scenario against the bits-and-blooms filter for comparison.
func RunProduction(w io.Writer, s *Scenario) error {
	fmt.Fprintln(w, "--- 2. UniqueStream Demo (Production bits-and-blooms/bloom) ---")
	if _, err := bloom.EstimateParameters(s.Filter.ExpectedItems, s.Filter.FPProbability); err != nil {
		return err
	}
	// the library handles the parameters itself
	f := prodFilter{bitsbloom.NewWithEstimates(uint(s.Filter.ExpectedItems), s.Filter.FPProbability)}

	fmt.Fprintf(w, "Filter configured for %s items with a %v error rate.\n", humanize.Comma(int64(s.Filter.ExpectedItems)), s.Filter.FPProbability)
	fmt.Fprintf(w, "Memory size: %s bits\n", humanize.Comma(int64(f.f.Cap())))
	fmt.Fprintf(w, "Hash functions: %d\n\n", f.f.K())

	for _, post := range s.Add {
		f.f.AddString(post)
	}
	for _, post := range s.Check {
		checkPost(w, f, post)
	}
	return nil
}

// Run prints the custom filter report, followed by the production comparison when requested.
func Run(w io.Writer, s *Scenario, withProduction bool) error {
	if err := RunCustom(w, s); err != nil {
		return err
	}
	if !withProduction {
		return nil
	}
	fmt.Fprintln(w)
	return RunProduction(w, s)
}
