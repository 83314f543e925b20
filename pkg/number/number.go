package number

import "math/big"

// BigString base 10 string of v, "0" for nil
func BigString(v *big.Int) string {
	if v == nil {
		return "0"
	}

	return v.String()
}
