//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package ring

import (
	"sort"
	"strconv"
	"strings"
)

// Alphabet defines the participant labels. The label of participant
// i is Alphabet[i] and the alphabet size bounds the number of
// participants.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxParticipants is the maximum number of participants.
const MaxParticipants = len(Alphabet)

// Label returns the display label of the participant index.
func Label(index int) string {
	if index < 0 || index >= MaxParticipants {
		return "?" + strconv.Itoa(index)
	}
	return Alphabet[index : index+1]
}

// Arc is a contiguous run of participants around the ring in
// construction order: the first element is the newest head and the
// rest is read in the rotational direction of the ring.
type Arc []int

// NewArc creates the arc of length participants starting from start
// in a ring of n participants.
func NewArc(start, length, n int) Arc {
	arc := make(Arc, length)
	for i := 0; i < length; i++ {
		arc[i] = (start + i) % n
	}
	return arc
}

// Head returns the head participant of the arc.
func (arc Arc) Head() int {
	return arc[0]
}

// Label returns the label sequence of the arc.
func (arc Arc) Label() string {
	var sb strings.Builder
	for _, idx := range arc {
		sb.WriteString(Label(idx))
	}
	return sb.String()
}

// SetKey returns a canonical representation of the arc's member
// set. Two arcs have the same set key if and only if they cover the
// same participants, regardless of their construction order.
func (arc Arc) SetKey() string {
	members := make([]int, len(arc))
	copy(members, arc)
	sort.Ints(members)

	var sb strings.Builder
	for i, idx := range members {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(idx))
	}
	return sb.String()
}

func (arc Arc) String() string {
	return arc.Label()
}
