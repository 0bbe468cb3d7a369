package collections

import (
	"sort"
	"strings"

	"cuaderno-ejercicios/internal/platform/maybe"
)

// Scores es un mapa equipo → puntaje.
type Scores struct {
	m map[string]uint64
}

func NewScores() *Scores {
	return &Scores{m: map[string]uint64{}}
}

// Insert escribe siempre; el valor anterior se pierde.
func (s *Scores) Insert(team string, score uint64) {
	s.m[team] = score
}

// InsertIfAbsent solo escribe si la clave no existe y devuelve el valor que
// queda guardado.
func (s *Scores) InsertIfAbsent(team string, score uint64) uint64 {
	if cur, ok := s.m[team]; ok {
		return cur
	}
	s.m[team] = score
	return score
}

func (s *Scores) Get(team string) maybe.Option[uint64] {
	v, ok := s.m[team]
	return maybe.FromPair(v, ok)
}

func (s *Scores) GetOr(team string, def uint64) uint64 {
	return s.Get(team).UnwrapOr(def)
}

// Remove devuelve el valor quitado, si existía.
func (s *Scores) Remove(team string) maybe.Option[uint64] {
	v, ok := s.m[team]
	delete(s.m, team)
	return maybe.FromPair(v, ok)
}

func (s *Scores) Len() int { return len(s.m) }

// Keys en orden alfabético (el mapa no tiene orden propio).
func (s *Scores) Keys() []string {
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Snapshot es una copia; modificarla no toca Scores.
func (s *Scores) Snapshot() map[string]uint64 {
	out := make(map[string]uint64, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}

// WordCount cuenta palabras: la primera vez la entrada arranca en initial y
// cada aparición suma uno.
func WordCount(text string, initial uint64) map[string]uint64 {
	out := map[string]uint64{}
	for _, w := range strings.Fields(text) {
		if _, ok := out[w]; !ok {
			out[w] = initial
		}
		out[w]++
	}
	return out
}
