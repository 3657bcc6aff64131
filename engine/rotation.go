package engine

// Rotation returns the turn order starting at the given seat, proceeding
// clockwise, skipping sittingOut (pass NoSeat when everyone plays). The
// same resolver drives bidding order, play order and dealer rotation.
func Rotation(start, sittingOut Seat) []Seat {
	order := make([]Seat, 0, NumSeats)
	s := start
	for i := 0; i < NumSeats; i++ {
		if s != sittingOut {
			order = append(order, s)
		}
		s = s.Next()
	}
	return order
}

// nextActive returns the first seat clockwise after s that is not
// sitting out.
func nextActive(s, sittingOut Seat) Seat {
	n := s.Next()
	if n == sittingOut {
		n = n.Next()
	}
	return n
}
