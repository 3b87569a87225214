package recruit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Kytol/skeleton-crew/internal/goblin"
)

type RequestType string

const (
	RequestSeeking  RequestType = "seeking"
	RequestOffering RequestType = "offering"
)

type RequestStatus string

const (
	RequestOpen      RequestStatus = "open"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "pending"
	ResponseAccepted ResponseStatus = "accepted"
	ResponseRejected ResponseStatus = "rejected"
)

type Response struct {
	ID            string         `json:"id"`
	ResponderID   string         `json:"responder_id"`
	ResponderName string         `json:"responder_name"`
	Message       string         `json:"message"`
	CounterOffer  int            `json:"counter_offer,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	Status        ResponseStatus `json:"status"`
}

// Request is a posting on the recruitment board. Race and class may be
// empty, meaning any.
type Request struct {
	ID            string        `json:"id"`
	RequesterID   string        `json:"requester_id"`
	RequesterName string        `json:"requester_name"`
	Type          RequestType   `json:"type"`
	DesiredRace   goblin.Race   `json:"desired_race,omitempty"`
	DesiredClass  goblin.Class  `json:"desired_class,omitempty"`
	MinLevel      int           `json:"min_level"`
	MaxLevel      int           `json:"max_level"`
	Compensation  int           `json:"compensation"`
	DurationDays  int           `json:"duration_days"`
	Description   string        `json:"description"`
	Status        RequestStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	Responses     []Response    `json:"responses"`
}

// Board holds recruitment requests and their responses, newest first.
type Board struct {
	mu       sync.RWMutex
	requests []Request
	now      func() time.Time
}

func NewBoard() *Board {
	b := &Board{now: time.Now}
	b.requests = sampleRequests(b.now())
	return b
}

// SetNowFunc overrides the clock for tests.
func (b *Board) SetNowFunc(now func() time.Time) {
	b.mu.Lock()
	b.now = now
	b.mu.Unlock()
}

func (b *Board) Post(ctx context.Context, req Request) Request {
	_ = ctx
	b.mu.Lock()
	defer b.mu.Unlock()

	req.ID = uuid.NewString()
	req.Status = RequestOpen
	req.CreatedAt = b.now()
	req.Responses = nil
	b.requests = append([]Request{req}, b.requests...)
	return req
}

func (b *Board) Requests(ctx context.Context) []Request {
	_ = ctx
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Request(nil), b.requests...)
}

func (b *Board) OpenRequests(ctx context.Context) []Request {
	_ = ctx
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Request, 0)
	for _, r := range b.requests {
		if r.Status == RequestOpen {
			out = append(out, r)
		}
	}
	return out
}

// Respond attaches a pending response to an open request.
func (b *Board) Respond(ctx context.Context, requestID, responderID, responderName, message string, counterOffer int) (Response, bool) {
	_ = ctx
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.requests {
		if b.requests[i].ID != requestID || b.requests[i].Status != RequestOpen {
			continue
		}
		resp := Response{
			ID:            uuid.NewString(),
			ResponderID:   responderID,
			ResponderName: responderName,
			Message:       message,
			CounterOffer:  counterOffer,
			CreatedAt:     b.now(),
			Status:        ResponsePending,
		}
		b.requests[i].Responses = append(b.requests[i].Responses, resp)
		return resp, true
	}
	return Response{}, false
}

// AcceptResponse completes the request, accepting one response and
// rejecting the rest.
func (b *Board) AcceptResponse(ctx context.Context, requestID, responseID string) bool {
	_ = ctx
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.requests {
		if b.requests[i].ID != requestID || b.requests[i].Status != RequestOpen {
			continue
		}
		found := false
		for j := range b.requests[i].Responses {
			if b.requests[i].Responses[j].ID == responseID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
		for j := range b.requests[i].Responses {
			if b.requests[i].Responses[j].ID == responseID {
				b.requests[i].Responses[j].Status = ResponseAccepted
			} else {
				b.requests[i].Responses[j].Status = ResponseRejected
			}
		}
		b.requests[i].Status = RequestCompleted
		return true
	}
	return false
}

func (b *Board) Cancel(ctx context.Context, requestID string) bool {
	_ = ctx
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.requests {
		if b.requests[i].ID == requestID && b.requests[i].Status == RequestOpen {
			b.requests[i].Status = RequestCancelled
			return true
		}
	}
	return false
}

func sampleRequests(now time.Time) []Request {
	return []Request{
		{
			ID: uuid.NewString(), RequesterID: "npc-grom", RequesterName: "WarChief Grom",
			Type: RequestSeeking, DesiredRace: goblin.RaceOrc, DesiredClass: goblin.ClassWarrior,
			MinLevel: 5, MaxLevel: 8, Compensation: 5000, DurationDays: 7,
			Description: "Need a strong orc warrior for an upcoming siege.",
			Status:      RequestOpen, CreatedAt: now.Add(-time.Hour),
		},
		{
			ID: uuid.NewString(), RequesterID: "npc-shadow", RequesterName: "Shadow Master",
			Type: RequestOffering, DesiredRace: goblin.RaceDarkElf, DesiredClass: goblin.ClassAssassin,
			MinLevel: 6, MaxLevel: 9, Compensation: 3000, DurationDays: 14,
			Description: "Offering an elite dark elf assassin for hire.",
			Status:      RequestOpen, CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: uuid.NewString(), RequesterID: "npc-necro", RequesterName: "Necro Lord",
			Type: RequestSeeking, DesiredRace: goblin.RaceUndead, DesiredClass: goblin.ClassNecromancer,
			MinLevel: 7, MaxLevel: 10, Compensation: 8000, DurationDays: 30,
			Description: "Seeking a powerful necromancer for a long raid campaign.",
			Status:      RequestOpen, CreatedAt: now.Add(-24 * time.Hour),
		},
	}
}
