// Package vec3 provides the generic three-component vector that the rest of
// the repository builds its geometry on.
//
// Componentwise combinators are exposed as explicitly named package
// functions (Map, Zip, TryZip, Unzip) rather than methods so that an
// operation may change the component type, e.g. zipping two scalar vectors
// into a vector of intervals. Arithmetic helpers (Add, Sub, Dot, Cross) are
// package functions over the Scalar constraint, in the same spirit as a
// distance package operating on raw slices.
package vec3

// Scalar constrains vector components to the built-in numeric types:
// totally ordered, with ring arithmetic.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vec3 is an ordered triple of T.
type Vec3[T any] struct {
	X, Y, Z T
}

// New creates a vector from its three components.
func New[T any](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Map applies f to each component.
func Map[T, U any](v Vec3[T], f func(T) U) Vec3[U] {
	return Vec3[U]{X: f(v.X), Y: f(v.Y), Z: f(v.Z)}
}

// Zip combines two vectors componentwise with f.
func Zip[A, B, R any](a Vec3[A], b Vec3[B], f func(A, B) R) Vec3[R] {
	return Vec3[R]{X: f(a.X, b.X), Y: f(a.Y, b.Y), Z: f(a.Z, b.Z)}
}

// TryZip combines two vectors componentwise, failing fast: it stops at the
// first component pair f rejects and reports false, leaving the remaining
// pairs unevaluated.
func TryZip[A, B, R any](a Vec3[A], b Vec3[B], f func(A, B) (R, bool)) (Vec3[R], bool) {
	var out Vec3[R]
	var ok bool
	if out.X, ok = f(a.X, b.X); !ok {
		return Vec3[R]{}, false
	}
	if out.Y, ok = f(a.Y, b.Y); !ok {
		return Vec3[R]{}, false
	}
	if out.Z, ok = f(a.Z, b.Z); !ok {
		return Vec3[R]{}, false
	}
	return out, true
}

// Unzip splits each component of v into two parts with f and collects the
// parts into two vectors. It is the inverse of a Zip that paired the
// components up.
func Unzip[T, A, B any](v Vec3[T], f func(T) (A, B)) (Vec3[A], Vec3[B]) {
	var a Vec3[A]
	var b Vec3[B]
	a.X, b.X = f(v.X)
	a.Y, b.Y = f(v.Y)
	a.Z, b.Z = f(v.Z)
	return a, b
}

// Add returns the componentwise sum of a and b.
func Add[T Scalar](a, b Vec3[T]) Vec3[T] {
	return Zip(a, b, func(x, y T) T { return x + y })
}

// Sub returns the componentwise difference a - b.
func Sub[T Scalar](a, b Vec3[T]) Vec3[T] {
	return Zip(a, b, func(x, y T) T { return x - y })
}

// Dot returns the dot product of a and b.
func Dot[T Scalar](a, b Vec3[T]) T {
	p := Zip(a, b, func(x, y T) T { return x * y })
	return p.X + p.Y + p.Z
}

// Cross returns the cross product of a and b.
func Cross[T Scalar](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Sign is the three-way comparison of a scalar against zero.
type Sign int8

const (
	Negative Sign = iota - 1
	Zero
	Positive
)

// SignVec records, per axis, which side of zero a direction component lies
// on.
type SignVec = Vec3[Sign]

// SignOf evaluates the spatial orientation of a direction vector by
// comparing each component against the zero of T. Only the side matters,
// not the magnitude, so the direction never needs normalizing; callers such
// as the half-space query combine the result with a box to fetch the two
// extremal corners along the direction.
func SignOf[T Scalar](v Vec3[T]) SignVec {
	return Map(v, func(c T) Sign {
		var zero T
		switch {
		case c < zero:
			return Negative
		case c > zero:
			return Positive
		default:
			return Zero
		}
	})
}
