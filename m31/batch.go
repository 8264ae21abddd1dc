package m31

import (
	"fmt"
	"runtime"
	"sync"
)

// parallelThreshold is the element count at or above which BatchInverseParallel
// switches from a single serial pass to chunked workers.
const parallelThreshold = 1000

// BatchInverse inverts every element of in using Montgomery's trick: one
// accumulated-product pass, a single inversion of the total product, then a
// back-substitution pass recovers every individual inverse. Returns an
// error if any element is zero.
func BatchInverse(in []F31) ([]F31, error) {
	n := len(in)
	if n == 0 {
		return []F31{}, nil
	}
	if n == 1 {
		inv, err := in[0].Inverse()
		if err != nil {
			return nil, err
		}
		return []F31{inv}, nil
	}

	for i, e := range in {
		if e.IsZero() {
			return nil, fmt.Errorf("m31: batch inverse: zero element at index %d", i)
		}
	}

	acc := make([]F31, n)
	acc[0] = in[0]
	for i := 1; i < n; i++ {
		acc[i] = acc[i-1].Mul(in[i])
	}

	accInv, err := acc[n-1].Inverse()
	if err != nil {
		return nil, fmt.Errorf("m31: batch inverse: %w", err)
	}

	out := make([]F31, n)
	for i := n - 1; i > 0; i-- {
		out[i] = accInv.Mul(acc[i-1])
		accInv = accInv.Mul(in[i])
	}
	out[0] = accInv
	return out, nil
}

// BatchInverseParallel behaves like BatchInverse but, at or above
// parallelThreshold elements, splits the input into runtime.GOMAXPROCS(0) chunks and runs
// Montgomery's trick independently on each chunk concurrently. Each chunk is
// a contiguous sub-batch, so this is exact, not approximate: batch inversion
// applied to any partition of the input agrees elementwise with applying it
// to the whole.
func BatchInverseParallel(in []F31) ([]F31, error) {
	n := len(in)
	workers := runtime.GOMAXPROCS(0)
	if n < parallelThreshold || workers <= 1 {
		return BatchInverse(in)
	}

	chunkSize := (n + workers - 1) / workers
	out := make([]F31, n)

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= n {
			break
		}
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			inverted, err := BatchInverse(in[start:end])
			if err != nil {
				errs[w] = err
				return
			}
			copy(out[start:end], inverted)
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
