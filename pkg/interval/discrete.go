package interval

// Discrete supplies the ordering and stepping primitives for an element
// type T. The per-type packages (id16, id32, id64, idrune, idip) provide
// implementations; the engine never inspects T beyond these calls.
//
// Successor and Predecessor must be monotonic and mutual inverses over the
// legal value space (Predecessor(Successor(v)) == v). At the domain bounds
// they saturate: stepping past the extreme value returns the value
// unchanged. The engine does not detect a violated contract; behavior with
// a malformed adapter is undefined.
type Discrete[T any] interface {
	// Compare returns -1 if a sorts before b, 0 if equal, +1 otherwise.
	Compare(a, b T) int
	// Successor returns the next value after v.
	Successor(v T) T
	// Predecessor returns the value before v.
	Predecessor(v T) T
}
