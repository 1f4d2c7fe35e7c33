/*
Package mirror links two text buffers, one holding escaped text and the
other one holding its readable form.

Editing one side of a Pair produces an Update for the other side. A user
interface renders the update into the opposite view. Rendering will
usually fire a change event for that view, which the interface hands back
to the pair like any other edit. The pair recognizes such an edit as the
echo of its own update and drops it, thus breaking the cycle of mutual
updates. Every update is tagged with the side it originates from; there is
no global "updating" flag.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mirror

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uesc"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Side denotes one of the two buffers of a pair.
type Side int8

// The two sides of a pair.
const (
	Escaped Side = iota // text in escaped form
	Plain               // human readable text
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Escaped {
		return Plain
	}
	return Escaped
}

func (s Side) String() string {
	switch s {
	case Escaped:
		return "escaped"
	case Plain:
		return "plain"
	}
	return fmt.Sprintf("side(%d)", int8(s))
}

// Update is a change to be rendered into the buffer at Target, caused by an
// edit at Origin.
type Update struct {
	Seq    uint64 // sequence number, starting at 1
	Origin Side   // side which has been edited
	Target Side   // side to write Text to
	Text   string // new content of the target buffer
}

func (u Update) String() string {
	return fmt.Sprintf("update #%d %s→%s %q", u.Seq, u.Origin, u.Target, u.Text)
}

// Clipboard is where a copy action puts the content of a buffer.
type Clipboard interface {
	WriteText(string) error
}

// Pair holds the content of two linked buffers. The zero value is not
// usable; create pairs with NewPair. A Pair is safe for concurrent use.
type Pair struct {
	mu      sync.Mutex
	text    [2]string
	pending [2]*Update // last update written to a side and not yet echoed
	seq     uint64
	history *arraylist.List // of Update
}

// NewPair creates a pair with two empty buffers.
func NewPair() *Pair {
	return &Pair{history: arraylist.New()}
}

// Edit tells the pair that the buffer at origin now holds text.
//
// If the edit is the echo of an update the pair itself has issued for this
// side, it is dropped and Edit returns false. Otherwise the opposite buffer
// is re-computed and returned as an Update, which the client has to render.
func (p *Pair) Edit(origin Side, text string) (Update, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if u := p.pending[origin]; u != nil {
		p.pending[origin] = nil
		if u.Text == text {
			CT().Debugf("mirror: dropping echo of %v", u)
			return Update{}, false
		}
	}
	p.text[origin] = text
	target := origin.Opposite()
	var converted string
	if origin == Escaped {
		converted = uesc.DecodeAll(text)
	} else {
		converted = uesc.EncodeAll(text)
	}
	p.seq++
	u := Update{Seq: p.seq, Origin: origin, Target: target, Text: converted}
	p.text[target] = converted
	p.pending[target] = &u
	p.history.Add(u)
	CT().Debugf("mirror: %v", u)
	return u, true
}

// Text returns the current content of a buffer.
func (p *Pair) Text(side Side) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text[side]
}

// History returns all updates issued so far, oldest first.
func (p *Pair) History() []Update {
	p.mu.Lock()
	defer p.mu.Unlock()
	updates := make([]Update, 0, p.history.Size())
	for _, v := range p.history.Values() {
		updates = append(updates, v.(Update))
	}
	return updates
}

// Copy puts the content of a buffer onto a clipboard, without any
// transformation.
func (p *Pair) Copy(side Side, cb Clipboard) error {
	text := p.Text(side)
	if err := cb.WriteText(text); err != nil {
		return fmt.Errorf("mirror: copying %s buffer: %w", side, err)
	}
	return nil
}
