package entity

import "snake-arcade/game/types"

// Snake is an ordered body, head first.
type Snake struct {
	Body []types.Point
}

// NewSnake builds a snake from segments listed head first.
func NewSnake(segments ...types.Point) *Snake {
	body := make([]types.Point, len(segments))
	copy(body, segments)
	return &Snake{Body: body}
}

// Move pushes a new head in front of the body. The tail stays until RemoveTail.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body that callers may keep.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
