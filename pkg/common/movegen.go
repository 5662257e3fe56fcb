package common

// Movers returns the pieces of side that have an empty square to step to.
func (p Position) Movers(side Side) uint32 {
	var empty = p.EmptySquares()
	var own = p.Pieces(side)
	var movers uint32
	for _, dir := range forwardDirections[side] {
		movers |= own & Shift(empty, OppositeDirection(dir))
	}
	var kings = own & p.Kings
	if kings != 0 {
		for _, dir := range forwardDirections[side.Opponent()] {
			movers |= kings & Shift(empty, OppositeDirection(dir))
		}
	}
	return movers
}

// Jumpers returns the pieces of side that can capture.
func (p Position) Jumpers(side Side) uint32 {
	var empty = p.EmptySquares()
	var own = p.Pieces(side)
	var opp = p.Pieces(side.Opponent())
	var jumpers uint32
	for _, dir := range forwardDirections[side] {
		var back = OppositeDirection(dir)
		jumpers |= own & Shift(opp&Shift(empty, back), back)
	}
	var kings = own & p.Kings
	if kings != 0 {
		for _, dir := range forwardDirections[side.Opponent()] {
			var back = OppositeDirection(dir)
			jumpers |= kings & Shift(opp&Shift(empty, back), back)
		}
	}
	return jumpers
}

func pieceDirections(side Side, king bool) []int {
	if king {
		return allDirections[:]
	}
	return forwardDirections[side][:]
}

// GenerateSimpleMoves appends all non-capturing steps of side to ml.
func (p Position) GenerateSimpleMoves(side Side, ml []Move) []Move {
	var empty = p.EmptySquares()
	for x := p.Movers(side); x != 0; x &= x - 1 {
		var from = FirstOne(x)
		for _, dir := range pieceDirections(side, p.Kings&SquareMask[from] != 0) {
			var to = Neighbour(from, dir)
			if to == SquareNone || empty&SquareMask[to] == 0 {
				continue
			}
			var m Move
			m.push(from)
			m.push(to)
			ml = append(ml, m)
		}
	}
	return ml
}

// GenerateJumps appends every complete jump sequence of side to ml.
// A man that is crowned ends its sequence on the crowning square.
func (p Position) GenerateJumps(side Side, ml []Move) []Move {
	for x := p.Jumpers(side); x != 0; x &= x - 1 {
		var from = FirstOne(x)
		var path Move
		path.push(from)
		ml = p.appendJumps(side, from, p.Kings&SquareMask[from] != 0, path, ml)
	}
	return ml
}

// appendJumps works on its own copy of the position, so sibling branches never see each other's captures.
func (p Position) appendJumps(side Side, from int, king bool, path Move, ml []Move) []Move {
	var opp = p.Pieces(side.Opponent())
	var empty = p.EmptySquares()
	var extended = false
	for _, dir := range pieceDirections(side, king) {
		var to = Landing(from, dir)
		if to == SquareNone || empty&SquareMask[to] == 0 {
			continue
		}
		var over = Neighbour(from, dir)
		if opp&SquareMask[over] == 0 {
			continue
		}
		extended = true
		var child = p
		child.step(side, from, to, over)
		var next = path
		next.push(to)
		if !king && SquareMask[to]&PromotionRow(side) != 0 {
			ml = append(ml, next)
			continue
		}
		ml = child.appendJumps(side, to, king, next, ml)
	}
	if !extended && path.Len() > 1 {
		ml = append(ml, path)
	}
	return ml
}

// GenerateMoves appends the legal moves of side to buffer[:0].
// Captures are mandatory. An empty result means side has lost.
func (p Position) GenerateMoves(side Side, buffer []Move) []Move {
	if p.Jumpers(side) != 0 {
		return p.GenerateJumps(side, buffer[:0])
	}
	return p.GenerateSimpleMoves(side, buffer[:0])
}

func (p Position) LegalMoves(side Side) []Move {
	return p.GenerateMoves(side, make([]Move, 0, 16))
}

func (p Position) HasLegalMoves(side Side) bool {
	return p.Movers(side)|p.Jumpers(side) != 0
}

func Perft(p Position, side Side, depth int) int {
	var buffer [MaxMoves]Move
	var ml = p.GenerateMoves(side, buffer[:0])
	if depth <= 1 {
		return len(ml)
	}
	var result = 0
	for _, m := range ml {
		result += Perft(p.MakeMove(m, side), side.Opponent(), depth-1)
	}
	return result
}
