package cm31

import "fmt"

// BatchInverse inverts every element of in using Montgomery's trick,
// mirroring m31.BatchInverse one extension degree up.
func BatchInverse(in []CM31) ([]CM31, error) {
	n := len(in)
	if n == 0 {
		return []CM31{}, nil
	}
	if n == 1 {
		inv, err := in[0].Inverse()
		if err != nil {
			return nil, err
		}
		return []CM31{inv}, nil
	}

	for i, z := range in {
		if z.IsZero() {
			return nil, fmt.Errorf("cm31: batch inverse: zero element at index %d", i)
		}
	}

	acc := make([]CM31, n)
	acc[0] = in[0]
	for i := 1; i < n; i++ {
		acc[i] = acc[i-1].Mul(in[i])
	}

	accInv, err := acc[n-1].Inverse()
	if err != nil {
		return nil, fmt.Errorf("cm31: batch inverse: %w", err)
	}

	out := make([]CM31, n)
	for i := n - 1; i > 0; i-- {
		out[i] = accInv.Mul(acc[i-1])
		accInv = accInv.Mul(in[i])
	}
	out[0] = accInv
	return out, nil
}
