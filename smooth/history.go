package smooth

import (
	"image"

	"github.com/framewise/reframe/crop"
)

// frameRecord is one held-back frame awaiting a smoothing verdict.
type frameRecord struct {
	decision    crop.Decision
	img         image.Image
	objectCount int
}

// history is the FIFO of held-back frames. The first record carries
// the hypothesis decision the later ones are judged against. It never
// evicts; the controller owns the drain policy.
type history struct {
	records []frameRecord
}

func (h *history) push(rec frameRecord) {
	h.records = append(h.records, rec)
}

// popFront removes and returns the oldest record.
func (h *history) popFront() (frameRecord, bool) {
	if len(h.records) == 0 {
		return frameRecord{}, false
	}
	rec := h.records[0]
	h.records = h.records[1:]
	if len(h.records) == 0 {
		h.records = nil
	}
	return rec, true
}

// front returns the oldest record without removing it.
func (h *history) front() (frameRecord, bool) {
	if len(h.records) == 0 {
		return frameRecord{}, false
	}
	return h.records[0], true
}

// back returns the newest record without removing it.
func (h *history) back() (frameRecord, bool) {
	if len(h.records) == 0 {
		return frameRecord{}, false
	}
	return h.records[len(h.records)-1], true
}

func (h *history) size() int {
	return len(h.records)
}

func (h *history) empty() bool {
	return len(h.records) == 0
}
