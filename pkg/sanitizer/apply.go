package sanitizer

// Normalizer transforms a raw attribute value ahead of type coercion.
// Normalizers never fail: values they do not recognise pass through unchanged.
type Normalizer func(any) any

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable pipeline from transforms.
// Preferred over repeated Apply calls when the same chain is used for every record.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Chain composes normalizers, skipping nil entries so callers can build
// pipelines conditionally.
func Chain(normalizers ...Normalizer) Normalizer {
	steps := make([]func(any) any, 0, len(normalizers))
	for _, n := range normalizers {
		if n != nil {
			steps = append(steps, n)
		}
	}
	return Compose(steps...)
}
