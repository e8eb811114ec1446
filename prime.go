package alien

// IsPrime reports whether n is prime. 0 and 1 are not.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	// d <= n/d instead of d*d <= n so d*d never overflows.
	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
