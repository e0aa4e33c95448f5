package models

import "time"

// Resource status constants
const (
	StatusAvailable  = "Available"
	StatusInProgress = "In Progress"
	StatusFulfilled  = "Fulfilled"
)

// Urgency levels offered on the victim form
const (
	UrgencyLow    = "Low"
	UrgencyMedium = "Medium"
	UrgencyHigh   = "High"
)

// OtherType is the resource type sentinel that switches to the custom type field.
const OtherType = "Others"

// Lifecycle constants
const (
	LifecycleBasic    = "basic"
	LifecycleExtended = "extended"
)

// Input types

// ResourceInput is a validated volunteer submission.
type ResourceInput struct {
	Type      string
	Qty       string
	Location  string
	Timeframe string
	Details   string
	Contact   string
}

// RequestInput is a validated victim submission.
type RequestInput struct {
	Name           string
	Urgency        string
	Contact        string
	VictimLocation string
	Details        string
}

// Request types

// Fields mirror the volunteer form. CustomType is only read when Type is "Others".
type AddResourceRequest struct {
	Type       string `json:"type"`
	CustomType string `json:"custom_type,omitempty"`
	Qty        string `json:"qty"`
	Location   string `json:"location"`
	Timeframe  string `json:"timeframe"`
	Details    string `json:"details"`
	Contact    string `json:"contact"`
}

type CreateRequestRequest struct {
	Name           string `json:"name"`
	Urgency        string `json:"urgency"`
	Contact        string `json:"contact"`
	VictimLocation string `json:"victimLocation"`
	Details        string `json:"details"`
}

// Response types

type AddResourceResponse struct {
	Index    int      `json:"index"`
	Resource Resource `json:"resource"`
}

type ReloadResponse struct {
	Count int `json:"count"`
}

// Domain types

// Resource is the persisted record. Field names match the stored JSON document.
type Resource struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Qty       string    `json:"qty"`
	Location  string    `json:"location"`
	Timeframe string    `json:"timeframe"`
	Details   string    `json:"details"`
	Contact   string    `json:"contact"`
	Status    string    `json:"status"`
	Requests  []Request `json:"requests"`
}

// Request is a victim's claim against a resource. Immutable once appended.
type Request struct {
	Name           string    `json:"name"`
	Urgency        string    `json:"urgency"`
	Contact        string    `json:"contact"`
	VictimLocation string    `json:"victimLocation"`
	Details        string    `json:"details"`
	RequestedAt    time.Time `json:"requestedAt"`
}

// Listing pairs an available resource with its position in the full list.
type Listing struct {
	Index    int      `json:"index"`
	Resource Resource `json:"resource"`
}

// Clone returns a copy that shares no slice storage with r.
func (r Resource) Clone() Resource {
	c := r
	c.Requests = make([]Request, len(r.Requests))
	copy(c.Requests, r.Requests)
	return c
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
