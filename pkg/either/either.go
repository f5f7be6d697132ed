// Package either provides a two-case result container.
//
// A use case returns an Either to tell its caller whether it produced a
// success value ("right") or an expected business failure ("left").
// Unexpected faults never travel through an Either; they are returned as
// plain Go errors next to it.
package either

// Either holds exactly one of a failure value (F) or a success value (S).
//
// Fields are unexported so a value can only be populated through Left or
// Right. The zero value is a Left carrying the zero F, which keeps the
// "neither" case unobservable.
type Either[F, S any] struct {
	left  F
	right S
	// isRight is the discriminant. false means the left slot is populated.
	isRight bool
}

// Left builds an Either holding a failure.
func Left[F, S any](failure F) Either[F, S] {
	return Either[F, S]{left: failure}
}

// Right builds an Either holding a success value.
func Right[F, S any](success S) Either[F, S] {
	return Either[F, S]{right: success, isRight: true}
}

// IsLeft reports whether the failure slot is populated.
func (e Either[F, S]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the success slot is populated.
func (e Either[F, S]) IsRight() bool {
	return e.isRight
}

// Value returns whichever side is populated.
func (e Either[F, S]) Value() any {
	if e.isRight {
		return e.right
	}
	return e.left
}

// Left returns the failure and true, or the zero F and false for a Right.
func (e Either[F, S]) Left() (F, bool) {
	if e.isRight {
		var zero F
		return zero, false
	}
	return e.left, true
}

// Right returns the success value and true, or the zero S and false for a Left.
func (e Either[F, S]) Right() (S, bool) {
	if !e.isRight {
		var zero S
		return zero, false
	}
	return e.right, true
}

// Fold is the exhaustive match over an Either. Exactly one of onLeft and
// onRight runs and its result is returned.
func Fold[F, S, R any](e Either[F, S], onLeft func(F) R, onRight func(S) R) R {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Map applies fn to the success value. A Left passes through unchanged.
func Map[F, S, T any](e Either[F, S], fn func(S) T) Either[F, T] {
	if e.isRight {
		return Right[F](fn(e.right))
	}
	return Left[F, T](e.left)
}
