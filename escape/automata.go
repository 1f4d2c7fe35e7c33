package escape

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
)

// Rune classes as seen by the run automaton.
const (
	otherClass     = iota // anything not part of the escape grammar
	backslashClass        // '\'
	uClass                // 'u'
	hexClass              // '0'…'9', 'a'…'f', 'A'…'F'
)

func runeClassFor(r rune) int {
	switch {
	case r == '\\':
		return backslashClass
	case r == 'u':
		return uClass
	case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		return hexClass
	}
	return otherClass
}

// stateFn represents a state of the automaton recognizing escape runs.
// A stateFn matches a rune of a given rune class and returns the
// state function to process the next rune. Matching stops as soon as a
// stateFn returns nil, which means the input has been rejected.
type stateFn func(*runAutomaton, rune, int) stateFn

// runAutomaton recognizes the grammar (\u HEX{4})+ with full-match
// semantics. While reading it collects the code unit of every complete
// escape group.
type runAutomaton struct {
	units    []uint16 // code units of complete groups
	unit     uint16   // code unit under construction
	digits   int      // hex digits read for the current group
	matchLen int      // number of runes matched so far
	nextStep stateFn  // current state; nil after rejection
}

// Automata are short-lived objects, created for every segment to decode.
// To avoid multiple allocation of small objects we will pool them.
type automatonPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalAutomatonPool *automatonPool

func init() {
	globalAutomatonPool = &automatonPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			a := &runAutomaton{units: make([]uint16, 0, 16)}
			return a, nil
		})
	globalAutomatonPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalAutomatonPool.opool = pool.NewObjectPool(globalAutomatonPool.ctx, factory, config)
}

// newPooledAutomaton returns a run automaton set to its start state.
func newPooledAutomaton() *runAutomaton {
	var a *runAutomaton
	if o, err := globalAutomatonPool.opool.BorrowObject(globalAutomatonPool.ctx); err == nil {
		a = o.(*runAutomaton)
	} else {
		CT().Errorf("cannot borrow run automaton from pool: %v", err)
		a = &runAutomaton{}
	}
	a.nextStep = expectBackslash
	return a
}

// release clears the automaton and puts it back into the pool.
func (a *runAutomaton) release() {
	a.units = a.units[:0]
	a.unit, a.digits, a.matchLen = 0, 0, 0
	a.nextStep = nil
	_ = globalAutomatonPool.opool.ReturnObject(globalAutomatonPool.ctx, a)
}

func (a *runAutomaton) String() string {
	if a == nil {
		return "[nil automaton]"
	}
	return fmt.Sprintf("[units=%d, len=%d, rejected=%v]", len(a.units), a.matchLen, a.rejected())
}

// runeEvent feeds the next rune into the automaton.
func (a *runAutomaton) runeEvent(r rune) {
	if a.nextStep != nil {
		a.nextStep = a.nextStep(a, r, runeClassFor(r))
	}
}

func (a *runAutomaton) rejected() bool {
	return a.nextStep == nil
}

// accepting is true if the automaton has consumed at least one complete
// group and is not in the middle of another one.
func (a *runAutomaton) accepting() bool {
	return a.nextStep != nil && len(a.units) > 0 && a.digits == 0 && a.matchLen%6 == 0
}

// scan runs the automaton over s. It returns the collected code units if
// s is a complete escape run, and false otherwise. The returned slice is
// owned by the automaton.
func (a *runAutomaton) scan(s string) ([]uint16, bool) {
	for _, r := range s {
		a.runeEvent(r)
		if a.rejected() {
			CT().Debugf("escape run rejected at rune %d: %#U", a.matchLen, r)
			return nil, false
		}
	}
	return a.units, a.accepting()
}

// --- State functions --------------------------------------------------

func doAbort(a *runAutomaton) stateFn {
	a.units = a.units[:0]
	return nil
}

func expectBackslash(a *runAutomaton, r rune, cpClass int) stateFn {
	if cpClass != backslashClass {
		return doAbort(a)
	}
	a.matchLen++
	return expectU
}

func expectU(a *runAutomaton, r rune, cpClass int) stateFn {
	if cpClass != uClass {
		return doAbort(a)
	}
	a.matchLen++
	a.unit, a.digits = 0, 0
	return expectHex
}

// expectHex matches one of four hex digits. After the fourth digit the code
// unit is complete and the automaton expects the start of another group.
func expectHex(a *runAutomaton, r rune, cpClass int) stateFn {
	if cpClass != hexClass {
		return doAbort(a)
	}
	a.matchLen++
	a.unit = a.unit<<4 | uint16(hexValue(r))
	a.digits++
	if a.digits < 4 {
		return expectHex
	}
	a.units = append(a.units, a.unit)
	a.digits = 0
	return expectBackslash
}

func hexValue(r rune) rune {
	switch {
	case r <= '9':
		return r - '0'
	case r >= 'a':
		return r - 'a' + 10
	}
	return r - 'A' + 10
}
