package domain

import "time"

type Status string

const (
	StatusNew      Status = "NEW"
	StatusCooking  Status = "COOKING"
	StatusDelivery Status = "DELIVERY"
	StatusReady    Status = "READY"
)

var statusRank = map[Status]int{
	StatusNew:      0,
	StatusCooking:  1,
	StatusDelivery: 2,
	StatusReady:    3,
}

func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank is the position of the status in the lifecycle, -1 if unknown.
func (s Status) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return -1
}

func (s Status) Terminal() bool {
	return s == StatusReady
}

// CanAdvanceTo reports whether next lies strictly after s.
func (s Status) CanAdvanceTo(next Status) bool {
	return s.Valid() && next.Valid() && next.Rank() > s.Rank()
}

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "CASH"
	PaymentElectronic PaymentMethod = "ELECTRONIC"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentElectronic
}

// StatusChange is a guarded transition: it applies only while the order is
// still in From.
type StatusChange struct {
	From         Status
	To           Status
	At           time.Time
	StampCall    bool
	StampDeliver bool
}

func NewStatusChange(from, to Status, at time.Time) StatusChange {
	return StatusChange{
		From:         from,
		To:           to,
		At:           at,
		StampCall:    to.Rank() >= StatusCooking.Rank(),
		StampDeliver: to == StatusReady,
	}
}
