package helpers

// Number is any built-in integer or floating-point kind.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SumNumbers returns the sum of xs, or zero when xs is empty.
func SumNumbers[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}
