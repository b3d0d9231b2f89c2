package term

import (
	"time"

	"gridcaster/internal/body"
)

// DefaultHold is how long a key press keeps its intent active. Terminals
// report key repeats but never releases.
const DefaultHold = 150 * time.Millisecond

// KeyLatch turns a stream of key presses into held intents that expire when
// the key stops repeating.
type KeyLatch struct {
	hold      time.Duration
	turn      body.TurnIntent
	turnUntil time.Time
	move      body.MoveIntent
	moveUntil time.Time
}

// NewKeyLatch creates a latch. A non-positive hold uses DefaultHold.
func NewKeyLatch(hold time.Duration) *KeyLatch {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &KeyLatch{hold: hold}
}

// Turn records a turn key press at now.
func (k *KeyLatch) Turn(t body.TurnIntent, now time.Time) {
	k.turn = t
	k.turnUntil = now.Add(k.hold)
}

// Move records a move key press at now.
func (k *KeyLatch) Move(m body.MoveIntent, now time.Time) {
	k.move = m
	k.moveUntil = now.Add(k.hold)
}

// Release drops both intents.
func (k *KeyLatch) Release() {
	k.turn, k.move = body.TurnNone, body.MoveNone
}

// Intents returns the intents still held at now.
func (k *KeyLatch) Intents(now time.Time) (body.TurnIntent, body.MoveIntent) {
	turn, move := k.turn, k.move
	if !now.Before(k.turnUntil) {
		turn = body.TurnNone
	}
	if !now.Before(k.moveUntil) {
		move = body.MoveNone
	}
	return turn, move
}
