package bfvm

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrRead  = errors.New("read error")
	ErrWrite = errors.New("write error")
)

// Run executes code against s, reading from in on OpIn and writing to
// out on OpOut. Execution stops at the first failed read or write. A
// read at end of input is a failure, not a zero byte.
func Run(code []Node, in io.Reader, out io.Writer, s *State) error {
	for _, n := range code {
		if err := step(n, in, out, s); err != nil {
			return err
		}
	}
	return nil
}

func step(n Node, in io.Reader, out io.Writer, s *State) error {
	switch n.Op {

	case OpShift:
		s.Pos = s.index(s.Pos, n.Value)

	case OpInc:
		pos := s.index(s.Pos, n.Off)
		s.Cells[pos] += byte(n.Value)
		if n.Commit {
			s.Pos = pos
		}

	case OpDec:
		pos := s.index(s.Pos, n.Off)
		s.Cells[pos] -= byte(n.Value)
		if n.Commit {
			s.Pos = pos
		}

	case OpMul:
		pos := s.index(s.Pos, n.Off)
		dest := s.index(pos, n.Dest)
		factor := n.Value
		if factor < 0 {
			factor = -factor
		}
		product := s.Cells[pos] * byte(factor)
		if n.Value >= 0 {
			s.Cells[dest] += product
		} else {
			s.Cells[dest] -= product
		}
		if n.Commit {
			s.Pos = pos
		}

	case OpAssign:
		pos := s.index(s.Pos, n.Off)
		s.Cells[pos] = byte(n.Value)
		if n.Commit {
			s.Pos = pos
		}

	case OpScan:
		pos := s.Pos
		for s.Cells[pos] != 0 {
			pos = s.index(pos, n.Value)
		}
		s.Pos = pos

	case OpOut:
		pos := s.index(s.Pos, n.Off)
		if _, err := out.Write([]byte{s.Cells[pos]}); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
		if n.Commit {
			s.Pos = pos
		}

	case OpIn:
		pos := s.index(s.Pos, n.Off)
		var buf [1]byte
		if _, err := io.ReadFull(in, buf[:]); err != nil {
			return fmt.Errorf("%w: %w", ErrRead, err)
		}
		s.Cells[pos] = buf[0]
		if n.Commit {
			s.Pos = pos
		}

	case OpLoop:
		for s.Cells[s.Pos] != 0 {
			if err := Run(n.Body, in, out, s); err != nil {
				return err
			}
		}

	case OpComment:

	default:
		panic(fmt.Errorf("bad op: %v", n.Op))
	}

	return nil
}
