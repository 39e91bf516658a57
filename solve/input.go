package solve

import "fmt"

// Input is the processed input handed to every part of a Solution: either
// the original raw text, or a type-erased value produced by the Solution's
// Preprocessor. Parts downcast with Text or Data and fail with
// ErrInvalidInput on a mismatch.
type Input struct {
	text string
	data any
}

// TextInput wraps raw puzzle text as an Input.
func TextInput(text string) Input { return Input{text: text} }

// DataInput wraps a preprocessed value as an Input.
func DataInput(v any) Input { return Input{data: v} }

// Text returns the raw text, or ErrInvalidInput when the Input holds
// preprocessed data instead.
func (in Input) Text() (string, error) {
	if in.data != nil {
		return "", fmt.Errorf("%w: expected raw text input but got preprocessed data", ErrInvalidInput)
	}
	return in.text, nil
}

// Data downcasts the preprocessed value to T. It fails with
// ErrInvalidInput when the Input holds raw text or a value of a different
// type.
func Data[T any](in Input) (T, error) {
	var zero T
	if in.data == nil {
		return zero, fmt.Errorf("%w: expected preprocessed data but got raw text", ErrInvalidInput)
	}
	v, ok := in.data.(T)
	if !ok {
		return zero, fmt.Errorf("%w: expected data of type %T but got %T", ErrInvalidInput, zero, in.data)
	}
	return v, nil
}
