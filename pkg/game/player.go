package game

// Player is the closed set of identities a game is generic over.
// Next defines the fixed turn cycle, Key is the stable identity used for every
// comparison (player values are duplicated freely across clones).
type Player[P any] interface {
	comparable
	Next() P
	Key() string
}

// Whether a and b are the same player, by identity key
func SamePlayer[P Player[P]](a, b P) bool {
	return a.Key() == b.Key()
}
