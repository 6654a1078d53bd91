package domain

import (
	"strconv"
	"time"
)

// DomainEvent is the base interface for all request lifecycle events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// RequestSubmittedEvent is emitted when a new change request enters the workflow.
type RequestSubmittedEvent struct {
	RequestID   int64
	RequestType string
	SKU         string
	TeamID      int64
	SubmittedAt time.Time
}

func (e *RequestSubmittedEvent) EventType() string {
	return "request.submitted"
}

func (e *RequestSubmittedEvent) AggregateID() string {
	return strconv.FormatInt(e.RequestID, 10)
}

// RequestResubmittedEvent is emitted when staff rework a rejected request.
type RequestResubmittedEvent struct {
	RequestID     int64
	SKU           string
	ResubmittedAt time.Time
}

func (e *RequestResubmittedEvent) EventType() string {
	return "request.resubmitted"
}

func (e *RequestResubmittedEvent) AggregateID() string {
	return strconv.FormatInt(e.RequestID, 10)
}

// RequestAssignedEvent is emitted when a pool request is assigned to a user.
type RequestAssignedEvent struct {
	RequestID  int64
	UserID     string
	AssignedAt time.Time
}

func (e *RequestAssignedEvent) EventType() string {
	return "request.assigned"
}

func (e *RequestAssignedEvent) AggregateID() string {
	return strconv.FormatInt(e.RequestID, 10)
}

// DecisionRecordedEvent is emitted for every manager verdict.
type DecisionRecordedEvent struct {
	RequestID int64
	Role      string
	Decision  string
	Comment   string
	DecidedAt time.Time
}

func (e *DecisionRecordedEvent) EventType() string {
	return "request.decision_recorded"
}

func (e *DecisionRecordedEvent) AggregateID() string {
	return strconv.FormatInt(e.RequestID, 10)
}

// RequestPublishedEvent is emitted when a request is materialized into the catalog.
type RequestPublishedEvent struct {
	RequestID   int64
	RequestType string
	SKU         string
	PublishedAt time.Time
}

func (e *RequestPublishedEvent) EventType() string {
	return "request.published"
}

func (e *RequestPublishedEvent) AggregateID() string {
	return strconv.FormatInt(e.RequestID, 10)
}

// RequestClosedEvent is emitted when a request is rejected and closed.
type RequestClosedEvent struct {
	RequestID int64
	SKU       string
	ClosedAt  time.Time
}

func (e *RequestClosedEvent) EventType() string {
	return "request.closed"
}

func (e *RequestClosedEvent) AggregateID() string {
	return strconv.FormatInt(e.RequestID, 10)
}
