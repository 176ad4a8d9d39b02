package xo

import (
	"testing"

	"github.com/IlikeChooros/go-guttt/pkg/game"
)

func TestMarkCycle(t *testing.T) {
	if X.Next() != O || O.Next() != X {
		t.Fatalf("X and O should alternate, got X->%v O->%v", X.Next(), O.Next())
	}

	if None.Next() != None {
		t.Errorf("None should stay None, got %v", None.Next())
	}

	if game.SamePlayer(X, O) || !game.SamePlayer(O, O.Next().Next()) {
		t.Error("identity should follow the key")
	}
}

func TestParse(t *testing.T) {
	for _, s := range []string{"x", "X"} {
		if m, ok := Parse(s); !ok || m != X {
			t.Errorf("Parse(%q) = %v, %v", s, m, ok)
		}
	}

	if _, ok := Parse("c"); ok {
		t.Error("Parse should reject unknown marks")
	}
}
