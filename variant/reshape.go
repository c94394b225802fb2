package variant

// reshape folds a flat element list into nested []any matching dims, taken
// from the last axis outward. A dimension of 0 is treated as 1 for stride
// computation but left as-is in the caller's recorded Dimensions. If flat is
// shorter than the product of dims, the missing trailing groups are filled
// with empty slices rather than erroring — the same tolerant behavior the
// reference implementation's _reshape uses.
func reshape(flat []any, dims []int32) any {
	if len(dims) == 0 {
		return flat
	}

	subdims := dims[1:]
	subsize := 1
	for _, d := range subdims {
		if d == 0 {
			d = 1
		}
		subsize *= int(d)
	}

	for int(dims[0])*subsize > len(flat) {
		flat = append(flat, []any{})
	}

	if len(subdims) == 0 || (len(subdims) == 1 && subdims[0] == 0) {
		return flat
	}

	out := make([]any, 0, (len(flat)+subsize-1)/subsize)
	for i := 0; i < len(flat); i += subsize {
		end := i + subsize
		if end > len(flat) {
			end = len(flat)
		}
		out = append(out, reshape(flat[i:end], subdims))
	}

	return out
}
