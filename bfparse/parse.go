package bfparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bf/bfvm"
)

var (
	ErrUnmatchedDelimiter = errors.New("unmatched delimiter")
	ErrMissingDelimiter   = errors.New("missing delimiter")
	ErrInternal           = errors.New("internal parser error")
)

// Parse reads program text from src and builds the instruction tree.
// Every byte maps to one node, unknown bytes become comments. Bracket
// nesting is tracked with an explicit stack, so nesting depth is
// bounded by memory rather than the call stack.
func Parse(src io.Reader) ([]bfvm.Node, error) {
	r := bufio.NewReader(src)
	nested := [][]bfvm.Node{nil}

	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}

		switch c {

		case '[':
			nested = append(nested, nil)

		case ']':
			if len(nested) < 2 {
				return nil, ErrUnmatchedDelimiter
			}
			body := nested[len(nested)-1]
			nested = nested[:len(nested)-1]
			last := len(nested) - 1
			nested[last] = append(nested[last], bfvm.Loop(body...))

		default:
			last := len(nested) - 1
			nested[last] = append(nested[last], charNode(c))
		}
	}

	if len(nested) > 1 {
		return nil, ErrMissingDelimiter
	}
	if len(nested) != 1 {
		return nil, ErrInternal
	}
	return nested[0], nil
}

func charNode(c byte) bfvm.Node {
	switch c {
	case '>':
		return bfvm.Shift(1)
	case '<':
		return bfvm.Shift(-1)
	case '+':
		return bfvm.Inc(1, 0, false)
	case '-':
		return bfvm.Dec(1, 0, false)
	case '.':
		return bfvm.Out(0, false)
	case ',':
		return bfvm.In(0, false)
	}
	return bfvm.Comment(c)
}
