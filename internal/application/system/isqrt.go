package system

// ISqrt returns floor(sqrt(v)) using the digit-by-digit method.
// Integer only so steering stays deterministic across platforms.
func ISqrt(v uint32) uint32 {
	if v < 2 {
		return v
	}

	// highest power of four <= v
	bit := uint32(1) << 30
	for bit > v {
		bit >>= 2
	}

	var res uint32
	for bit != 0 {
		if v >= res+bit {
			v -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}
